package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/katalvlaran/crinkle/surface"
)

// Sentinel errors for rasterization.
var (
	// ErrNilBand is returned when a nil band is passed to a renderer.
	ErrNilBand = errors.New("render: band is nil")

	// ErrShortBuffer is returned when the pixel buffer cannot hold the
	// full image.
	ErrShortBuffer = errors.New("render: pixel buffer too small")
)

// DrawPixels rasterizes the band into pix as tightly packed RGBA rows,
// sized for direct use as a frame buffer: width = Depth(), height =
// Span(). Columns run oldest to newest, left to right, right-aligned
// while the band is still filling; sample 0 sits on the bottom row.
// Slots without a column yet, and fully flat windows, render as sea.
//
// pix must hold at least 4*Depth()*Span() bytes. The call allocates
// nothing, so a viewer can invoke it every frame.
// Returns ErrNilBand or ErrShortBuffer.
// Complexity: O(Depth·Span).
func DrawPixels(pix []byte, b *surface.Band) error {
	if b == nil {
		return ErrNilBand
	}
	w, h := b.Depth(), b.Span()
	if len(pix) < 4*w*h {
		return ErrShortBuffer
	}

	lo, hi, err := b.MinMax()
	if err != nil && !errors.Is(err, surface.ErrEmptyBand) {
		return err
	}

	sea := palette[0]
	gap := w - b.Columns() // empty slots on the left while filling
	for x := 0; x < w; x++ {
		if x < gap {
			for y := 0; y < h; y++ {
				setRGBA(pix, 4*(y*w+x), sea)
			}
			continue
		}
		col := b.Column(x - gap)
		for y := 0; y < h; y++ {
			setRGBA(pix, 4*(y*w+x), Shade(col[h-1-y], lo, hi))
		}
	}

	return nil
}

// setRGBA writes one pixel at byte offset o.
func setRGBA(pix []byte, o int, c color.RGBA) {
	pix[o+0] = c.R
	pix[o+1] = c.G
	pix[o+2] = c.B
	pix[o+3] = c.A
}

// Image rasterizes the live columns into a stdlib RGBA image sized
// Columns() by Span(), suitable for image/png encoding. Orientation
// matches DrawPixels: oldest column leftmost, sample 0 at the bottom.
// Returns ErrNilBand or surface.ErrEmptyBand.
// Complexity: O(Columns·Span).
func Image(b *surface.Band) (*image.RGBA, error) {
	if b == nil {
		return nil, ErrNilBand
	}
	lo, hi, err := b.MinMax()
	if err != nil {
		return nil, err
	}

	w, h := b.Columns(), b.Span()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		col := b.Column(x)
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, Shade(col[h-1-y], lo, hi))
		}
	}

	return img, nil
}
