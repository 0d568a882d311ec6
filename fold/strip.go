package fold

import "sync"

// stripPools recycles strip storage per level; see Release.
// sync.Pool is safe for concurrent use, so independent Folds on
// different goroutines may share it freely.
var stripPools [MaxLevel + 1]sync.Pool

// stripLen returns the number of samples in a level-l strip.
// Complexity: O(1).
func stripLen(level int) int {
	return 1<<level + 1
}

// Strip is an ordered, fixed-size buffer of height samples at one
// resolution level: 2^level+1 entries, with boundary samples at index 0
// and index 2^level. Interior even indices carry samples inherited from
// the coarser level, odd indices carry the interpolated midpoints.
//
// A Strip returned by Fold.NextStrip is owned by the caller, who may
// read and write its entries freely and should Release it when done.
type Strip struct {
	level int
	data  []Height
}

// NewStrip allocates a zeroed Strip of the given level, reusing pooled
// storage when available. Returns ErrLevelRange outside [0, MaxLevel].
// Complexity: O(2^level) for the zero fill.
func NewStrip(level int) (*Strip, error) {
	if level < 0 || level > MaxLevel {
		return nil, ErrLevelRange
	}
	if v := stripPools[level].Get(); v != nil {
		s := v.(*Strip)
		s.data = s.data[:stripLen(level)]
		for i := range s.data {
			s.data[i] = 0
		}

		return s, nil
	}

	return &Strip{level: level, data: make([]Height, stripLen(level))}, nil
}

// FillStrip allocates a Strip of the given level with every entry set
// to value; used to seed a flat starting surface at the mean height.
// Returns ErrLevelRange outside [0, MaxLevel].
// Complexity: O(2^level).
func FillStrip(level int, value Height) (*Strip, error) {
	s, err := NewStrip(level)
	if err != nil {
		return nil, err
	}
	for i := range s.data {
		s.data[i] = value
	}

	return s, nil
}

// Level reports the strip's resolution level.
// Complexity: O(1).
func (s *Strip) Level() int { return s.level }

// Len reports the number of samples: 2^level+1 for a live strip,
// 0 after Release.
// Complexity: O(1).
func (s *Strip) Len() int { return len(s.data) }

// At returns the i-th sample. Panics like a slice access when i is out
// of range (every index is out of range on a released strip).
// Complexity: O(1).
func (s *Strip) At(i int) Height { return s.data[i] }

// Heights exposes the strip's samples without copying. The slice
// aliases the Strip's storage: the owner may read and write through it
// until Release, after which it must not be touched.
// Complexity: O(1).
func (s *Strip) Heights() []Height { return s.data }

// Double produces a new Strip one level finer: s's entries land on even
// indices in order, odd indices hold zero placeholders to be finalized
// later by SideUpdate. s itself is not mutated.
// Returns ErrNilStrip for a nil or released receiver and ErrLevelRange
// when the finer level would exceed MaxLevel.
// Complexity: O(2^level).
func (s *Strip) Double() (*Strip, error) {
	if s == nil || len(s.data) == 0 {
		return nil, ErrNilStrip
	}
	p, err := NewStrip(s.level + 1)
	if err != nil {
		return nil, err
	}
	half := 1 << s.level
	for i := 0; i < half; i++ {
		p.data[2*i] = s.data[i]
		p.data[2*i+1] = 0
	}
	p.data[2*half] = s.data[half]

	return p, nil
}

// Release returns the strip's storage to the per-level pool. Releasing
// nil or an already-released strip is a no-op; any further use of the
// strip, or of slices obtained from Heights, is invalid afterwards.
// Complexity: O(1).
func (s *Strip) Release() {
	if s == nil || len(s.data) == 0 {
		return
	}
	s.data = s.data[:0]
	stripPools[s.level].Put(s)
}
