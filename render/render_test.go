package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crinkle/fold"
	"github.com/katalvlaran/crinkle/render"
	"github.com/katalvlaran/crinkle/surface"
)

// bandOf builds a span-2 band of the given depth and pushes one level-0
// strip per sample pair.
func bandOf(t *testing.T, depth int, cols ...[2]fold.Height) *surface.Band {
	t.Helper()

	b, err := surface.New(2, depth)
	require.NoError(t, err)
	for _, c := range cols {
		s, err := fold.NewStrip(0)
		require.NoError(t, err)
		copy(s.Heights(), c[:])
		require.NoError(t, b.Push(s))
	}

	return b
}

// px reads the pixel at (x, y) from a packed RGBA buffer of width w.
func px(pix []byte, w, x, y int) color.RGBA {
	o := 4 * (y*w + x)

	return color.RGBA{R: pix[o], G: pix[o+1], B: pix[o+2], A: pix[o+3]}
}

// TestIndex_Quantization: heights quantize linearly against the window
// range, clamp outside it, and degenerate windows map to sea. The
// fixture range [0, 4] keeps every expected index exact in float64.
func TestIndex_Quantization(t *testing.T) {
	cases := []struct {
		name      string
		h, lo, hi fold.Height
		want      byte
	}{
		{name: "Floor", h: 0, lo: 0, hi: 4, want: 0},
		{name: "Quarter", h: 1, lo: 0, hi: 4, want: 63},
		{name: "Half", h: 2, lo: 0, hi: 4, want: 127},
		{name: "Ceiling", h: 4, lo: 0, hi: 4, want: 255},
		{name: "ClampBelow", h: -5, lo: 0, hi: 4, want: 0},
		{name: "ClampAbove", h: 9, lo: 0, hi: 4, want: 255},
		{name: "FlatWindow", h: 5, lo: 5, hi: 5, want: 0},
		{name: "InvertedWindow", h: 1, lo: 3, hi: 2, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.Index(tc.h, tc.lo, tc.hi))
		})
	}
}

// TestPalette_TerrainBands: spot-check the gradient regions without
// pinning exact shades. Water is blue-dominant, grass green-dominant,
// rock gray, the summit pure white, and everything opaque.
func TestPalette_TerrainBands(t *testing.T) {
	p := render.Palette()

	assert.Greater(t, p[0].B, p[0].R, "deep water should be blue")
	assert.Greater(t, p[0].B, p[0].G)
	assert.Greater(t, p[160].G, p[160].R, "mid elevations should be green")
	assert.Equal(t, p[200].R, p[200].G, "rock should be gray")
	assert.Equal(t, p[200].G, p[200].B)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, p[255])

	for i := range p {
		require.Equal(t, uint8(255), p[i].A, "palette entry %d must be opaque", i)
	}
}

// TestShade_MatchesPaletteLookup: Shade is Index composed with the
// palette.
func TestShade_MatchesPaletteLookup(t *testing.T) {
	p := render.Palette()

	assert.Equal(t, p[0], render.Shade(0, 0, 4))
	assert.Equal(t, p[127], render.Shade(2, 0, 4))
	assert.Equal(t, p[255], render.Shade(4, 0, 4))
}

// TestDrawPixels_Orientation: oldest column leftmost, sample 0 on the
// bottom row.
func TestDrawPixels_Orientation(t *testing.T) {
	b := bandOf(t, 2, [2]fold.Height{0, 4}, [2]fold.Height{1, 2})
	p := render.Palette()

	pix := make([]byte, 4*b.Depth()*b.Span())
	require.NoError(t, render.DrawPixels(pix, b))

	assert.Equal(t, p[255], px(pix, 2, 0, 0), "top of the oldest column")
	assert.Equal(t, p[0], px(pix, 2, 0, 1), "bottom of the oldest column")
	assert.Equal(t, p[127], px(pix, 2, 1, 0), "top of the newest column")
	assert.Equal(t, p[63], px(pix, 2, 1, 1), "bottom of the newest column")
}

// TestDrawPixels_PartialWindow: while the band is filling, live columns
// hug the right edge and the vacant left renders as sea.
func TestDrawPixels_PartialWindow(t *testing.T) {
	b := bandOf(t, 3, [2]fold.Height{0, 4})
	p := render.Palette()

	pix := make([]byte, 4*b.Depth()*b.Span())
	require.NoError(t, render.DrawPixels(pix, b))

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, p[0], px(pix, 3, x, y), "vacant slot (%d,%d)", x, y)
		}
	}
	assert.Equal(t, p[255], px(pix, 3, 2, 0))
	assert.Equal(t, p[0], px(pix, 3, 2, 1))
}

// TestDrawPixels_EmptyAndFlat: an empty window and a flat one both come
// out as open sea, without error.
func TestDrawPixels_EmptyAndFlat(t *testing.T) {
	p := render.Palette()

	empty := bandOf(t, 2)
	pix := make([]byte, 4*empty.Depth()*empty.Span())
	require.NoError(t, render.DrawPixels(pix, empty))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, p[0], px(pix, 2, x, y))
		}
	}

	flat := bandOf(t, 2, [2]fold.Height{5, 5}, [2]fold.Height{5, 5})
	require.NoError(t, render.DrawPixels(pix, flat))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, p[0], px(pix, 2, x, y))
		}
	}
}

// TestDrawPixels_Rejections: nil bands and undersized buffers are
// refused before any write.
func TestDrawPixels_Rejections(t *testing.T) {
	assert.ErrorIs(t, render.DrawPixels(make([]byte, 16), nil), render.ErrNilBand)

	b := bandOf(t, 2, [2]fold.Height{0, 4})
	assert.ErrorIs(t, render.DrawPixels(make([]byte, 15), b), render.ErrShortBuffer)
	assert.ErrorIs(t, render.DrawPixels(nil, b), render.ErrShortBuffer)
}

// TestImage_MatchesDrawPixels: the stdlib image path uses the same
// mapping and orientation, sized to the live columns only.
func TestImage_MatchesDrawPixels(t *testing.T) {
	b := bandOf(t, 2, [2]fold.Height{0, 4}, [2]fold.Height{1, 2})
	p := render.Palette()

	img, err := render.Image(b)
	require.NoError(t, err)

	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, p[255], img.RGBAAt(0, 0))
	assert.Equal(t, p[0], img.RGBAAt(0, 1))
	assert.Equal(t, p[127], img.RGBAAt(1, 0))
	assert.Equal(t, p[63], img.RGBAAt(1, 1))
}

// TestImage_Rejections: nil and empty bands cannot be rasterized to an
// image, since there is no height range to normalize against.
func TestImage_Rejections(t *testing.T) {
	_, err := render.Image(nil)
	assert.ErrorIs(t, err, render.ErrNilBand)

	_, err = render.Image(bandOf(t, 2))
	assert.ErrorIs(t, err, surface.ErrEmptyBand)
}
