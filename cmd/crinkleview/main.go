//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := newConfig()
	cfg.bind(flag.CommandLine)
	flag.Parse()

	g, err := newGame(cfg)
	if err != nil {
		log.Fatalf("crinkleview: %v", err)
	}

	ebiten.SetWindowTitle("crinkleview")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Columns*cfg.Scale, g.band.Span()*cfg.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
