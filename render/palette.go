// Package render turns height samples into pixels: a fixed 256-entry
// terrain palette, height quantization against a window's range, and
// RGBA rasterization of a surface band.
package render

import (
	"image/color"

	"github.com/katalvlaran/crinkle/fold"
)

// Terrain bands over the quantized byte range. Sea level sits at the
// byte midpoint, so half the palette is water.
const (
	resolution = 1 << 4

	sandLevel  = 255 / 2
	grassLevel = sandLevel + resolution
	rockLevel  = 255 - 4*resolution
	snowLevel  = 255 - resolution
)

// palette is built once at init; all lookups are plain array reads.
var palette = makePalette()

// Palette exposes the terrain palette, index 0 deepest water through
// index 255 summit snow.
// Complexity: O(1).
func Palette() *[256]color.RGBA {
	return &palette
}

// makePalette lays linear gradients over the terrain bands.
func makePalette() [256]color.RGBA {
	var p [256]color.RGBA
	fillBand(&p, 0, sandLevel, color.RGBA{R: 0, G: 24, B: 96, A: 255}, color.RGBA{R: 32, G: 120, B: 200, A: 255})
	fillBand(&p, sandLevel, grassLevel, color.RGBA{R: 194, G: 178, B: 128, A: 255}, color.RGBA{R: 214, G: 198, B: 152, A: 255})
	fillBand(&p, grassLevel, rockLevel, color.RGBA{R: 58, G: 148, B: 58, A: 255}, color.RGBA{R: 30, G: 96, B: 42, A: 255})
	fillBand(&p, rockLevel, snowLevel, color.RGBA{R: 112, G: 112, B: 112, A: 255}, color.RGBA{R: 176, G: 176, B: 176, A: 255})
	fillBand(&p, snowLevel, 256, color.RGBA{R: 232, G: 232, B: 238, A: 255}, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	return p
}

// fillBand writes a linear gradient from c0 to c1 over p[from:to].
func fillBand(p *[256]color.RGBA, from, to int, c0, c1 color.RGBA) {
	span := to - from
	for i := 0; i < span; i++ {
		var t float64
		if span > 1 {
			t = float64(i) / float64(span-1)
		}
		p[from+i] = color.RGBA{
			R: lerp(c0.R, c1.R, t),
			G: lerp(c0.G, c1.G, t),
			B: lerp(c0.B, c1.B, t),
			A: 255,
		}
	}
}

// lerp interpolates one channel with rounding.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// Index quantizes a height into the palette range [0, 255] relative to
// the window extremes. Heights at or below lo map to 0, at or above hi
// to 255. A degenerate window (hi <= lo, e.g. a flat surface) maps
// everything to 0, which renders as open sea.
// Complexity: O(1).
func Index(h, lo, hi fold.Height) byte {
	if !(hi > lo) {
		return 0
	}
	t := float64(h-lo) / float64(hi-lo)
	q := int(t * 255)
	if q < 0 {
		q = 0
	}
	if q > 255 {
		q = 255
	}

	return byte(q)
}

// Shade maps a height straight to its palette color.
// Complexity: O(1).
func Shade(h, lo, hi fold.Height) color.RGBA {
	return palette[Index(h, lo, hi)]
}
