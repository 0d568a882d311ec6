// Package fold provides a production-grade streaming generator of
// fractal terrain strips via recursive midpoint displacement, one strip
// per call, with cross-level work amortized two-to-one between adjacent
// resolution levels.
//
// What
//
//   - Generates Strips of 2^level+1 height samples along one axis.
//   - A Fold owns the whole recursion chain, level 0 (coarsest) up to
//     the finest; each level keeps its own buffers and noise scales.
//   - NextStrip runs a two-phase state machine per level:
//   - START: pull one strip from the level below, finalize the pending
//     strip's placeholders (SideUpdate), compute a fresh strip between
//     them (MidUpdate), optionally re-smooth stored samples (Recalc),
//     and hand out the previously completed strip.
//   - STORE: hand out the strip finalized by the paired START call and
//     rotate buffers for the next cycle.
//   - Two calls at any level trigger exactly one call at the level
//     below, so an unbounded strip stream costs amortized O(width) per
//     strip regardless of depth.
//   - Noise enters only through the injected Source capability; the
//     default is the deterministic gauss stream selected by WithSeed.
//
// Why
//
//   - Render or analyze arbitrarily long terrain bands in constant
//     memory: the surface scrolls, it is never materialized whole.
//   - Fractal dimension gives direct, physically meaningful control of
//     roughness: noise amplitude scales as length^(2·fdim) per level.
//   - The update kernels are exposed (SideUpdate, MidUpdate, Recalc)
//     for callers composing custom refinement pipelines.
//
// Determinism
//
//	Strip values are a pure function of the construction parameters and
//	the Source's sample stream. With the default seeded source, equal
//	seeds reproduce equal surfaces on every platform; no time-based
//	randomness exists anywhere in the package.
//
// Ownership
//
//	A Strip returned by NextStrip belongs to the caller: read or write
//	it freely, then Release it to recycle its storage. A Fold releases
//	its own internal strips on Close. Nothing is shared; nothing is
//	mutated after hand-off.
//
// Complexity (W = 2^Level()+1 samples per strip)
//
//   - Time:   amortized O(W) per NextStrip call
//   - Memory: O(W) held per Fold (all levels combined, geometric series)
//
// Usage
//
//	// 257-sample strips, defaults: smoothing on, fdim 0.65, seed 0.
//	f, err := fold.New(8)
//	if err != nil {
//	    // handle ErrLevelRange or ErrOptionViolation
//	}
//	defer f.Close()
//
//	for i := 0; i < 1024; i++ {
//	    s, err := f.NextStrip()
//	    if err != nil {
//	        // handle ErrClosed or a kernel error
//	    }
//	    consume(s.Heights())
//	    s.Release()
//	}
//
//	// With functional options:
//	f, err := fold.New(10,
//	    fold.WithSmoothing(false),
//	    fold.WithFractalDim(0.8),
//	    fold.WithBaseLength(2),
//	    fold.WithMean(100),
//	    fold.WithStart(100),
//	    fold.WithSeed(42),
//	)
//
// Options
//
//   - DefaultOptions(): smoothing on, BaseLength 1, Start 0, Mean 0,
//     FractalDim 0.65, deterministic default noise stream.
//   - WithSmoothing(on):    toggle the crease-removal Recalc pass.
//   - WithBaseLength(l):    finest-level update-cell size (> 0).
//   - WithStart(h):         height of the flat seed strips.
//   - WithMean(h):          mean height injected at the base case.
//   - WithFractalDim(d):    roughness exponent (> 0, finite).
//   - WithSeed(n):          default noise stream selector (0 = fixed default).
//   - WithSource(src):      inject a custom standard-normal Source.
//
// Errors
//
//   - ErrLevelRange      if a level lies outside [0, MaxLevel].
//   - ErrOptionViolation if an invalid Option was supplied.
//   - ErrNilFold         if NextStrip runs on a nil Fold.
//   - ErrClosed          if NextStrip runs after Close.
//   - ErrNilStrip        if a kernel receives a nil or released strip.
//   - ErrNilSource       if a kernel receives a nil noise source.
//   - ErrLevelMismatch   if kernel strip levels are inconsistent.
//   - ErrBadState        if a Fold's phase tag is corrupted.
package fold
