package fold

// The three update kernels below realize midpoint displacement: every
// new sample is an average of known neighbors plus an independent
// standard-normal draw weighted by the level's scale. The operand order
// and divisors are deliberate; changing them changes the exact sample
// stream produced for a given noise source.

// displace draws one noise sample from src, weighted by scale.
// Complexity: O(1).
func displace(src Source, scale Length) Height {
	return Height(float64(scale) * src.Gaussian())
}

// SideUpdate finalizes the zero placeholders of a freshly doubled strip:
// each odd entry becomes scale-weighted noise plus the average of its
// two even neighbors,
//
//	d[2i+1] = scale·g + (d[2i] + d[2i+2])/2,  i in [0, 2^(L-1)).
//
// Requires a live strip of level >= 1 (a level-0 strip has no interior)
// and a non-nil source; returns ErrNilStrip, ErrNilSource or
// ErrLevelRange accordingly.
// Complexity: O(2^L) time, O(1) space.
func SideUpdate(s *Strip, src Source, scale Length) error {
	if s == nil || len(s.data) == 0 {
		return ErrNilStrip
	}
	if src == nil {
		return ErrNilSource
	}
	if s.level < 1 {
		return ErrLevelRange
	}

	count := 1 << (s.level - 1)
	d := s.data
	for i := 0; i < count; i++ {
		d[2*i+1] = displace(src, scale) + (d[2*i]+d[2*i+2])/2
	}

	return nil
}

// MidUpdate populates result from the strips on either side of it: left
// is one level coarser, right shares result's level. Even entries take
// the midpoint of the facing left/right samples plus scale-weighted
// noise; odd entries take the four-neighbor average of two left and two
// right samples plus midscale-weighted noise. The final boundary entry
// is computed like the interior evens, from the last left/right pair.
//
//	result[2i]   = scale·g    + (l[i] + r[2i])/2
//	result[2i+1] = midscale·g + (l[i] + l[i+1] + r[2i] + r[2i+2])/4
//	result[2^L]  = scale·g    + (l[2^(L-1)] + r[2^L])/2
//
// Noise draws happen in index order: even then odd per cell, the final
// boundary entry last.
// Returns ErrNilStrip for any nil or released strip, ErrNilSource for a
// nil source, and ErrLevelMismatch unless left.level == result.level-1
// and result.level == right.level.
// Complexity: O(2^L) time, O(1) space.
func MidUpdate(left, result, right *Strip, src Source, scale, midscale Length) error {
	if left == nil || len(left.data) == 0 ||
		result == nil || len(result.data) == 0 ||
		right == nil || len(right.data) == 0 {
		return ErrNilStrip
	}
	if src == nil {
		return ErrNilSource
	}
	if left.level != result.level-1 || result.level != right.level {
		return ErrLevelMismatch
	}

	count := 1 << left.level
	l, n, r := left.data, result.data, right.data
	for i := 0; i < count; i++ {
		n[2*i] = displace(src, scale) + (l[i]+r[2*i])/2
		n[2*i+1] = displace(src, midscale) + (l[i]+l[i+1]+r[2*i]+r[2*i+2])/4
	}
	// the last one
	n[2*count] = displace(src, scale) + (l[count]+r[2*count])/2

	return nil
}

// Recalc is the crease-removal pass: it rewrites every even entry of
// regen from its two now-finalized odd neighbors plus the facing left
// and right samples and fresh scale-weighted noise. Boundary entries
// average three neighbors, interior entries four:
//
//	regen[0]   = scale·g + (l[0] + regen[1] + r[0])/3
//	regen[k]   = scale·g + (l[k] + regen[k+1] + regen[k-1] + r[k])/4
//	regen[2^L] = scale·g + (l[2^L] + regen[2^L-1] + r[2^L])/3
//
// Rewriting stored samples may nudge the effective fractal dimension a
// little; the pass is kept exactly as originally formulated.
// All three strips must share one level >= 1. Returns ErrNilStrip,
// ErrNilSource, ErrLevelMismatch or ErrLevelRange.
// Complexity: O(2^L) time, O(1) space.
func Recalc(left, regen, right *Strip, src Source, scale Length) error {
	if left == nil || len(left.data) == 0 ||
		regen == nil || len(regen.data) == 0 ||
		right == nil || len(right.data) == 0 {
		return ErrNilStrip
	}
	if src == nil {
		return ErrNilSource
	}
	if left.level != regen.level || regen.level != right.level {
		return ErrLevelMismatch
	}
	if regen.level < 1 {
		return ErrLevelRange
	}

	count := 1<<(regen.level-1) - 1
	l, g, r := left.data, regen.data, right.data
	g[0] = displace(src, scale) + (l[0]+g[1]+r[0])/3
	k := 2
	for i := 0; i < count; i++ {
		g[k] = displace(src, scale) + (l[k]+g[k+1]+g[k-1]+r[k])/4
		k += 2
	}
	// the last one
	g[k] = displace(src, scale) + (l[k]+g[k-1]+r[k])/3

	return nil
}
