// Command crinklegen renders a scrolling fractal terrain ribbon into a
// PNG file, one generated strip per image column.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/katalvlaran/crinkle/fold"
	"github.com/katalvlaran/crinkle/render"
	"github.com/katalvlaran/crinkle/surface"
)

// config represents the command-line parameters of the generator.
type config struct {
	Levels     int
	Columns    int
	Seed       int64
	FractalDim float64
	BaseLength float64
	Start      float64
	Mean       float64
	Rough      bool
	Out        string
}

// newConfig returns a config populated with sensible defaults.
func newConfig() *config {
	return &config{
		Levels:     8,
		Columns:    512,
		Seed:       0,
		FractalDim: fold.DefaultFractalDim,
		BaseLength: float64(fold.DefaultBaseLength),
		Out:        "crinkle.png",
	}
}

// bind attaches the configuration to the provided FlagSet.
func (c *config) bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Levels, "levels", c.Levels, "recursion depth; strips carry 2^levels+1 samples")
	fs.IntVar(&c.Columns, "columns", c.Columns, "number of strips, and the image width")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed (0 selects the fixed default stream)")
	fs.Float64Var(&c.FractalDim, "fdim", c.FractalDim, "fractal dimension")
	fs.Float64Var(&c.BaseLength, "length", c.BaseLength, "update-cell size at the finest level")
	fs.Float64Var(&c.Start, "start", c.Start, "height of the flat starting plane")
	fs.Float64Var(&c.Mean, "mean", c.Mean, "mean surface height")
	fs.BoolVar(&c.Rough, "rough", c.Rough, "disable the crease-removal pass")
	fs.StringVar(&c.Out, "o", c.Out, "output PNG path")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("crinklegen: ")

	cfg := newConfig()
	cfg.bind(flag.CommandLine)
	flag.Parse()

	f, err := fold.New(cfg.Levels,
		fold.WithSeed(cfg.Seed),
		fold.WithSmoothing(!cfg.Rough),
		fold.WithFractalDim(cfg.FractalDim),
		fold.WithBaseLength(fold.Length(cfg.BaseLength)),
		fold.WithStart(fold.Height(cfg.Start)),
		fold.WithMean(fold.Height(cfg.Mean)),
	)
	if err != nil {
		log.Fatalf("configure generator: %v", err)
	}
	defer f.Close()

	band, err := surface.New(f.Width(), cfg.Columns)
	if err != nil {
		log.Fatalf("allocate surface window: %v", err)
	}
	for i := 0; i < cfg.Columns; i++ {
		if err = band.Advance(f); err != nil {
			log.Fatalf("generate strip %d: %v", i, err)
		}
	}

	img, err := render.Image(band)
	if err != nil {
		log.Fatalf("rasterize: %v", err)
	}

	out, err := os.Create(cfg.Out)
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Out, err)
	}
	if err = png.Encode(out, img); err != nil {
		out.Close()
		log.Fatalf("encode %s: %v", cfg.Out, err)
	}
	if err = out.Close(); err != nil {
		log.Fatalf("close %s: %v", cfg.Out, err)
	}

	log.Printf("wrote %s: %dx%d, levels=%d seed=%d smooth=%v",
		cfg.Out, cfg.Columns, f.Width(), cfg.Levels, cfg.Seed, !cfg.Rough)
}
