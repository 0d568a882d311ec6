package surface_test

import (
	"fmt"

	"github.com/katalvlaran/crinkle/fold"
	"github.com/katalvlaran/crinkle/gauss"
	"github.com/katalvlaran/crinkle/surface"
)

// ExampleBand_MinMax fills a window from a deterministic chain and
// reads the height range a renderer would normalize against. With unit
// noise on a level-1 chain the first two strips are [0 0 0] and [2 1 2].
func ExampleBand_MinMax() {
	f, err := fold.New(1,
		fold.WithSource(gauss.Constant(1)),
		fold.WithBaseLength(1),
		fold.WithFractalDim(0.5),
	)
	if err != nil {
		fmt.Println("surface error:", err)
		return
	}
	defer f.Close()

	b, err := surface.New(f.Width(), 8)
	if err != nil {
		fmt.Println("surface error:", err)
		return
	}
	for i := 0; i < 2; i++ {
		if err = b.Advance(f); err != nil {
			fmt.Println("surface error:", err)
			return
		}
	}

	lo, hi, err := b.MinMax()
	if err != nil {
		fmt.Println("surface error:", err)
		return
	}
	fmt.Printf("min=%v max=%v\n", lo, hi)
	// Output:
	// min=0 max=2
}
