package gauss

// Constant is a scripted source returning the same value on every draw.
// Constant(0) turns midpoint displacement into pure neighbor averaging,
// which makes expected heights computable by hand.
type Constant float64

// Gaussian returns the fixed value.
//
// Complexity: O(1).
func (c Constant) Gaussian() float64 {
	return float64(c)
}

// Sequence replays a scripted list of samples in order, cycling back to
// the start when exhausted, and counts every draw. Scripted sources pin
// the exact evaluation order of displacement kernels.
type Sequence struct {
	vals  []float64
	next  int
	draws uint64
}

// NewSequence returns a Sequence over the given samples.
// An empty script draws zero forever.
func NewSequence(vals ...float64) *Sequence {
	return &Sequence{vals: vals}
}

// Gaussian returns the next scripted sample.
//
// Complexity: O(1).
func (s *Sequence) Gaussian() float64 {
	s.draws++
	if len(s.vals) == 0 {
		return 0
	}

	var v float64
	v = s.vals[s.next]
	s.next++
	if s.next == len(s.vals) {
		s.next = 0
	}

	return v
}

// Draws reports how many samples have been requested so far.
func (s *Sequence) Draws() uint64 {
	return s.draws
}
