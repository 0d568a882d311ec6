package fold_test

import (
	"fmt"

	"github.com/katalvlaran/crinkle/fold"
	"github.com/katalvlaran/crinkle/gauss"
)

// ExampleNew builds a seeded level-8 chain and pulls the first strip.
// Every strip carries 2^8+1 samples.
func ExampleNew() {
	f, err := fold.New(8, fold.WithSeed(42))
	if err != nil {
		fmt.Println("fold error:", err)
		return
	}
	defer f.Close()

	s, err := f.NextStrip()
	if err != nil {
		fmt.Println("fold error:", err)
		return
	}
	defer s.Release()

	fmt.Println(f.Width(), s.Len(), s.Level())
	// Output:
	// 257 257 8
}

// ExampleFold_NextStrip pins the generator to a silent noise source, so
// the surface never leaves the starting plane and each call yields the
// same flat strip.
func ExampleFold_NextStrip() {
	f, err := fold.New(1,
		fold.WithSmoothing(false),
		fold.WithSource(gauss.Constant(0)),
	)
	if err != nil {
		fmt.Println("fold error:", err)
		return
	}
	defer f.Close()

	for i := 0; i < 2; i++ {
		s, err := f.NextStrip()
		if err != nil {
			fmt.Println("fold error:", err)
			return
		}
		fmt.Println(s.Heights())
		s.Release()
	}
	// Output:
	// [0 0 0]
	// [0 0 0]
}

// ExampleWithSmoothing contrasts the two modes on a level-1 chain with
// unit noise: the crease-removal pass rewrites the stored strip before
// it is handed out on the second call.
func ExampleWithSmoothing() {
	secondStrip := func(smooth bool) []fold.Height {
		f, err := fold.New(1,
			fold.WithSmoothing(smooth),
			fold.WithSource(gauss.Constant(1)),
			fold.WithBaseLength(1),
			fold.WithFractalDim(0.5),
		)
		if err != nil {
			return nil
		}
		defer f.Close()

		var heights []fold.Height
		for i := 0; i < 2; i++ {
			s, err := f.NextStrip()
			if err != nil {
				return nil
			}
			heights = append(heights[:0], s.Heights()...)
			s.Release()
		}

		return heights
	}

	fmt.Println("smooth:", secondStrip(true))
	fmt.Println("rough: ", secondStrip(false))
	// Output:
	// smooth: [2 1 2]
	// rough:  [0 1 0]
}

// ExampleSideUpdate finalizes the placeholders of a doubled strip with a
// silent source, leaving pure neighbor averages.
func ExampleSideUpdate() {
	s, err := fold.NewStrip(2)
	if err != nil {
		fmt.Println("fold error:", err)
		return
	}
	defer s.Release()

	h := s.Heights()
	h[0], h[2], h[4] = 1, 3, 5

	if err = fold.SideUpdate(s, gauss.Constant(0), 1); err != nil {
		fmt.Println("fold error:", err)
		return
	}

	fmt.Println(s.Heights())
	// Output:
	// [1 2 3 4 5]
}
