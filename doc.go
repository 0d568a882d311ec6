// Package crinkle is a streaming fractal terrain generator: strips of
// midpoint-displacement heights, produced one at a time, rendered into
// scrolling landscapes.
//
// 🚀 What is crinkle?
//
//	A small, deterministic, allocation-conscious toolkit that brings together:
//		• Strip generation: recursive midpoint displacement with per-level scaling
//		• Two-phase updates: each level refines lazily, half as often as the one above
//		• Crease removal: an optional smoothing pass over freshly stored samples
//		• Noise control: seeded Gaussian streams, or inject your own source
//		• Surface windows: a bounded scrolling band over the most recent strips
//		• Rendering: terrain palette, RGBA rasterizers, PNG export, GUI viewer
//
// ✨ Why choose crinkle?
//
//   - Streaming by construction - memory stays flat no matter how far you scroll
//   - Reproducible - one seed, one surface, on every platform
//   - Test-friendly - swap the noise for a scripted source and assert exact heights
//   - Pure Go core - the GUI viewer is isolated behind a build tag
//
// Under the hood, everything is organized under focused subpackages:
//
//	fold/    - strips, update kernels, and the per-level generation chain
//	gauss/   - deterministic standard-normal streams + scripted test sources
//	surface/ - the scrolling band of recent strips
//	render/  - palette, quantizer, RGBA and image rasterizers
//	cmd/     - crinklegen (PNG ribbons) and crinkleview (ebiten viewer)
//
// Quick ASCII example:
//
//	    o───x───o───x───o
//	    0   1   2   3   4
//
//	a level-2 strip: even samples arrive from the coarser level below,
//	odd samples are freshly displaced midpoints.
//
// Next up: cross-strip export formats and palette customization. Dive
// into examples/ for runnable scenarios from raw strips to PNG ribbons.
//
//	go get github.com/katalvlaran/crinkle
package crinkle
