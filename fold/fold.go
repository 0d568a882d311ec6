// Package fold generates one-dimensional strips of height samples that
// compose into a fractal terrain surface, one strip per call, without
// ever holding the whole surface in memory.
package fold

import (
	"math"

	"github.com/katalvlaran/crinkle/gauss"
)

// state tags the two phases of a level's update cycle.
type state uint8

const (
	// stateStart: the next call recurses, runs the update pair and hands out old.
	stateStart state = iota
	// stateStore: the next call hands out regen and rotates the buffers.
	stateStore
)

// level holds one recursion level's fractal parameters and strip slots.
//
// Slot lifecycle within one phase pair (levels above 0):
//   - before START: regen has finalized evens and placeholder odds,
//     old is fully finalized, coarse and working are nil.
//   - after START:  coarse holds the strip pulled from the level below,
//     working holds the freshly computed strip, old has been handed out.
//   - after STORE:  regen is the doubled coarse strip, old took over
//     working, coarse was released, and the cycle repeats.
type level struct {
	scale    Length
	midscale Length
	st       state

	old     *Strip
	coarse  *Strip
	working *Strip
	regen   *Strip

	pulls uint64 // calls served at this level
}

// Fold is the whole recursion chain of a streaming fractal surface, one
// entry per level from 0 (the coarsest, terminal base case) up to
// Level() (the finest). Construct with New, pull strips with NextStrip,
// dispose with Close.
//
// A Fold is not safe for concurrent use: the per-level state machines
// are interdependent and correctness relies on strict sequential
// ordering. Run independent Folds on independent goroutines instead,
// each with its own noise source.
type Fold struct {
	levels []level
	smooth bool
	mean   Height
	src    Source
	closed bool
}

// New constructs the full chain for the given finest level. Scale and
// midscale are fixed per level from the doubling update-cell length,
//
//	scale    = length^(2·fdim)
//	midscale = (length·√2)^(2·fdim)
//
// and every level above 0 is seeded with flat strips at the start
// height. The first NextStrip call on a fresh Fold always performs an
// update cycle.
//
// Returns ErrLevelRange when levels lies outside [0, MaxLevel] and the
// recorded option error (wrapping ErrOptionViolation) for invalid
// options.
// Complexity: O(2^levels) time and space for the seed strips.
func New(levels int, opts ...Option) (*Fold, error) {
	if levels < 0 || levels > MaxLevel {
		return nil, ErrLevelRange
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Source == nil {
		// Deterministic default stream; Seed 0 maps to a fixed seed
		// inside gauss, never to the clock.
		o.Source = gauss.New(o.Seed)
	}

	f := &Fold{
		levels: make([]level, levels+1),
		smooth: o.Smooth,
		mean:   o.Mean,
		src:    o.Source,
	}

	// The finest level uses BaseLength; the cell doubles toward level 0.
	length := float64(o.BaseLength)
	exp := 2 * o.FractalDim
	for lv := levels; lv >= 0; lv-- {
		l := &f.levels[lv]
		l.scale = Length(math.Pow(length, exp))
		l.midscale = Length(math.Pow(length*math.Sqrt2, exp))
		l.st = stateStart
		if lv > 0 {
			var err error
			if l.regen, err = FillStrip(lv, o.Start); err != nil {
				return nil, err
			}
			if l.old, err = FillStrip(lv, o.Start); err != nil {
				return nil, err
			}
		}
		length *= 2
	}

	return f, nil
}

// Level reports the finest recursion level of the chain.
// Complexity: O(1).
func (f *Fold) Level() int { return len(f.levels) - 1 }

// Width reports the number of samples in every strip NextStrip yields.
// Complexity: O(1).
func (f *Fold) Width() int { return stripLen(f.Level()) }

// NextStrip returns the next strip of the surface, transferring
// ownership to the caller, who should Release it after use. Each pair
// of calls at a level triggers exactly one call at the level below, so
// long length-scale deformation emerges gradually as generation
// proceeds.
//
// Returns ErrNilFold on a nil receiver, ErrClosed after Close, and any
// kernel or allocation error, after which the Fold should be Closed.
// Complexity: amortized O(2^Level()) per call.
func (f *Fold) NextStrip() (*Strip, error) {
	if f == nil {
		return nil, ErrNilFold
	}
	if f.closed {
		return nil, ErrClosed
	}

	return f.next(len(f.levels) - 1)
}

// next serves one call of the state machine at level lv.
func (f *Fold) next(lv int) (*Strip, error) {
	l := &f.levels[lv]
	l.pulls++

	if lv == 0 {
		// Base case: two independent jittered samples around the mean,
		// no state, no recursion, never cached.
		s, err := NewStrip(0)
		if err != nil {
			return nil, err
		}
		s.data[0] = f.mean + displace(f.src, l.scale)
		s.data[1] = f.mean + displace(f.src, l.scale)

		return s, nil
	}

	switch l.st {
	case stateStart:
		// Perform an update pair, return the first result.
		coarse, err := f.next(lv - 1)
		if err != nil {
			return nil, err
		}
		l.coarse = coarse
		if err = SideUpdate(l.regen, f.src, l.scale); err != nil {
			return nil, err
		}
		if l.working, err = NewStrip(lv); err != nil {
			return nil, err
		}
		if err = MidUpdate(l.coarse, l.working, l.regen, f.src, l.scale, l.midscale); err != nil {
			return nil, err
		}
		if f.smooth {
			if err = Recalc(l.working, l.regen, l.old, f.src, l.scale); err != nil {
				return nil, err
			}
		}
		out := l.old
		l.old = nil
		l.st = stateStore

		return out, nil

	case stateStore:
		// Return the second value from the previous update and rotate
		// the slots by move, never by copy.
		out := l.regen
		l.old = l.working
		l.working = nil
		regen, err := l.coarse.Double()
		if err != nil {
			return nil, err
		}
		l.regen = regen
		l.coarse.Release()
		l.coarse = nil
		l.st = stateStart

		return out, nil

	default:
		return nil, ErrBadState
	}
}

// Close releases every strip still held by the chain and marks the Fold
// closed; subsequent NextStrip calls return ErrClosed. Strips already
// handed out are unaffected, since their ownership moved to the caller.
// Closing twice, or closing a nil Fold, is a no-op.
// Complexity: O(Level()).
func (f *Fold) Close() {
	if f == nil || f.closed {
		return
	}
	f.closed = true
	for i := range f.levels {
		l := &f.levels[i]
		l.old.Release()
		l.coarse.Release()
		l.working.Release()
		l.regen.Release()
		l.old, l.coarse, l.working, l.regen = nil, nil, nil, nil
	}
}
