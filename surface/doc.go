// Package surface - a scrolling window over generated terrain strips.
//
// What:
//   - Band: a fixed-capacity ring of the most recent strips, ordered
//     oldest to newest, with O(1) column access and steady-state
//     zero-allocation pushes.
//   - Push transfers strip ownership into the band; Advance couples a
//     band directly to a fold.Fold, pulling and pushing in one step.
//   - MinMax reports the height range of the live window, the input a
//     renderer needs to normalize elevation into a palette.
//
// Why:
//   - The generator hands out one strip at a time and never retains the
//     surface; something has to hold the recent past so a picture can
//     scroll. A bounded ring keeps memory flat no matter how long
//     generation runs.
//
// Ownership:
//   - A successfully pushed strip belongs to the band and is released
//     immediately after copying. On error the caller keeps the strip.
//   - Column returns a live view into the ring; it is valid until that
//     column is evicted by a later push.
//
// Usage:
//
//	f, _ := fold.New(8, fold.WithSeed(42))
//	defer f.Close()
//
//	b, _ := surface.New(f.Width(), 320)
//	for i := 0; i < 320; i++ {
//		if err := b.Advance(f); err != nil {
//			return err
//		}
//	}
//	lo, hi, _ := b.MinMax()
//
// Errors:
//   - ErrNilBand, ErrBadSpan, ErrBadDepth: construction and nil misuse.
//   - ErrSpanMismatch: pushed strip length differs from the band span.
//   - ErrEmptyBand: MinMax on a window with no columns.
//   - fold.ErrNilStrip: pushing a nil or released strip.
package surface
