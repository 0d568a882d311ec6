//go:build ebiten

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/crinkle/fold"
	"github.com/katalvlaran/crinkle/render"
	"github.com/katalvlaran/crinkle/surface"
)

// game adapts the strip generator to the ebiten.Game interface: one
// strip scrolls in per tick and the band window fills the screen.
//
// Keys: Q/Escape quit, Space pauses, N steps one strip while paused,
// R replays the surface from the configured seed.
type game struct {
	cfg  *config
	f    *fold.Fold
	band *surface.Band
	pix  []byte

	paused   bool
	stepOnce bool
}

// newGame constructs a game for the provided configuration.
func newGame(cfg *config) (*game, error) {
	f, err := cfg.newFold()
	if err != nil {
		return nil, err
	}
	band, err := surface.New(f.Width(), cfg.Columns)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &game{
		cfg:  cfg,
		f:    f,
		band: band,
		pix:  make([]byte, 4*band.Depth()*band.Span()),
	}, nil
}

// reset discards the surface and replays it from the configured seed.
func (g *game) reset() error {
	f, err := g.cfg.newFold()
	if err != nil {
		return err
	}
	g.f.Close()
	g.f = f
	g.band.Reset()
	g.stepOnce = false

	return nil
}

// Update handles input and scrolls one strip in per tick.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			return err
		}
	}

	if !g.paused || g.stepOnce {
		if err := g.band.Advance(g.f); err != nil {
			return err
		}
		g.stepOnce = false
	}

	return nil
}

// Draw rasterizes the current window into the frame buffer.
func (g *game) Draw(screen *ebiten.Image) {
	// pix is pre-sized for the band, so the draw cannot fail.
	_ = render.DrawPixels(g.pix, g.band)
	screen.WritePixels(g.pix)
}

// Layout returns the logical screen size; ebiten scales it to the window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.band.Depth(), g.band.Span()
}
