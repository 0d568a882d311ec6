package main

import (
	"flag"

	"github.com/katalvlaran/crinkle/fold"
)

// config represents the command-line parameters of the viewer.
type config struct {
	Levels     int
	Columns    int
	Scale      int
	TPS        int
	Seed       int64
	FractalDim float64
	BaseLength float64
	Rough      bool
}

// newConfig returns a config populated with sensible defaults.
func newConfig() *config {
	return &config{
		Levels:     8,
		Columns:    512,
		Scale:      2,
		TPS:        60,
		Seed:       42,
		FractalDim: fold.DefaultFractalDim,
		BaseLength: float64(fold.DefaultBaseLength),
	}
}

// bind attaches the configuration to the provided FlagSet.
func (c *config) bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Levels, "levels", c.Levels, "recursion depth; strips carry 2^levels+1 samples")
	fs.IntVar(&c.Columns, "columns", c.Columns, "number of strips kept on screen")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "strips scrolled in per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed (0 selects the fixed default stream)")
	fs.Float64Var(&c.FractalDim, "fdim", c.FractalDim, "fractal dimension")
	fs.Float64Var(&c.BaseLength, "length", c.BaseLength, "update-cell size at the finest level")
	fs.BoolVar(&c.Rough, "rough", c.Rough, "disable the crease-removal pass")
}

// newFold builds a generator from the configuration.
func (c *config) newFold() (*fold.Fold, error) {
	return fold.New(c.Levels,
		fold.WithSeed(c.Seed),
		fold.WithSmoothing(!c.Rough),
		fold.WithFractalDim(c.FractalDim),
		fold.WithBaseLength(fold.Length(c.BaseLength)),
	)
}
