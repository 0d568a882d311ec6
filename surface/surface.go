// Package surface accumulates generated strips into a scrolling window
// of terrain columns ready for rendering or measurement.
package surface

import (
	"errors"

	"github.com/katalvlaran/crinkle/fold"
)

// Sentinel errors for band management.
var (
	// ErrNilBand is returned when an operation is invoked on a nil Band.
	ErrNilBand = errors.New("surface: band is nil")

	// ErrBadSpan is returned by New for a non-positive span.
	ErrBadSpan = errors.New("surface: span must be positive")

	// ErrBadDepth is returned by New for a non-positive depth.
	ErrBadDepth = errors.New("surface: depth must be positive")

	// ErrSpanMismatch is returned when a pushed strip's length differs
	// from the band's span.
	ErrSpanMismatch = errors.New("surface: strip length does not match band span")

	// ErrEmptyBand is returned by MinMax when no columns are held.
	ErrEmptyBand = errors.New("surface: band holds no columns")
)

// Band is a fixed-capacity scrolling window over the most recent strips
// of a surface. Columns are ordered oldest to newest; once depth columns
// are held, each push evicts the oldest. Storage is one flat ring, so a
// steady stream of pushes allocates nothing.
//
// A Band is not safe for concurrent use.
type Band struct {
	span  int
	depth int
	data  []fold.Height
	head  int // ring slot of the oldest column
	count int
}

// New returns an empty Band holding up to depth columns of span samples.
// Returns ErrBadSpan or ErrBadDepth for non-positive dimensions.
// Complexity: O(span·depth) for the backing allocation.
func New(span, depth int) (*Band, error) {
	if span <= 0 {
		return nil, ErrBadSpan
	}
	if depth <= 0 {
		return nil, ErrBadDepth
	}

	return &Band{
		span:  span,
		depth: depth,
		data:  make([]fold.Height, span*depth),
	}, nil
}

// Span reports the number of samples per column.
// Complexity: O(1).
func (b *Band) Span() int { return b.span }

// Depth reports the maximum number of columns retained.
// Complexity: O(1).
func (b *Band) Depth() int { return b.depth }

// Columns reports how many columns are currently held.
// Complexity: O(1).
func (b *Band) Columns() int { return b.count }

// slot maps a column position (0 = oldest) to its ring slot.
func (b *Band) slot(col int) int {
	return (b.head + col) % b.depth
}

// Push copies the strip's samples into the band as the newest column and
// releases the strip; ownership transfers on success. When the band is
// full the oldest column is evicted first. On error the strip is left
// untouched and still belongs to the caller.
// Returns ErrNilBand, fold.ErrNilStrip or ErrSpanMismatch.
// Complexity: O(span).
func (b *Band) Push(s *fold.Strip) error {
	if b == nil {
		return ErrNilBand
	}
	if s == nil || s.Len() == 0 {
		return fold.ErrNilStrip
	}
	if s.Len() != b.span {
		return ErrSpanMismatch
	}

	var at int
	if b.count == b.depth {
		at = b.head
		b.head = (b.head + 1) % b.depth
	} else {
		at = b.slot(b.count)
		b.count++
	}
	copy(b.data[at*b.span:(at+1)*b.span], s.Heights())
	s.Release()

	return nil
}

// Advance pulls the next strip from f and pushes it onto the band.
// Any generation or push error is returned as is.
// Complexity: amortized O(span).
func (b *Band) Advance(f *fold.Fold) error {
	if b == nil {
		return ErrNilBand
	}
	s, err := f.NextStrip()
	if err != nil {
		return err
	}
	if err = b.Push(s); err != nil {
		// The push failed, so ownership never transferred.
		s.Release()
		return err
	}

	return nil
}

// Column returns the samples of one column without copying, oldest
// first. The slice aliases the ring and is valid until the column is
// evicted. Panics like a slice access when col is out of range.
// Complexity: O(1).
func (b *Band) Column(col int) []fold.Height {
	if col < 0 || col >= b.count {
		panic("surface: column out of range")
	}
	at := b.slot(col)

	return b.data[at*b.span : (at+1)*b.span]
}

// At returns sample i of the col-th oldest column. Panics like a slice
// access when either index is out of range.
// Complexity: O(1).
func (b *Band) At(col, i int) fold.Height {
	return b.Column(col)[i]
}

// MinMax scans the live columns and reports the extreme heights, which
// renderers use to normalize elevation into their palette range.
// Returns ErrNilBand or ErrEmptyBand.
// Complexity: O(span·columns).
func (b *Band) MinMax() (lo, hi fold.Height, err error) {
	if b == nil {
		return 0, 0, ErrNilBand
	}
	if b.count == 0 {
		return 0, 0, ErrEmptyBand
	}

	lo, hi = b.At(0, 0), b.At(0, 0)
	for col := 0; col < b.count; col++ {
		for _, h := range b.Column(col) {
			if h < lo {
				lo = h
			}
			if h > hi {
				hi = h
			}
		}
	}

	return lo, hi, nil
}

// Reset drops every column without freeing the backing storage.
// Complexity: O(1).
func (b *Band) Reset() {
	if b == nil {
		return
	}
	b.head, b.count = 0, 0
}
