// Package fold defines core types, tunable options, and sentinel errors
// for the midpoint-displacement strip generator.
package fold

import (
	"errors"
	"fmt"
	"math"
)

// MaxLevel bounds the recursion depth accepted by NewStrip and New.
// A level-30 strip already holds 2^30+1 samples; the cap keeps every
// strip size comfortably inside the int range on all platforms.
const MaxLevel = 30

// Height is one elevation sample of the generated surface.
type Height float64

// Length is the physical size of an update cell at one recursion level.
// It modulates displacement-noise amplitude and plays a different role
// than Height despite the same underlying numeric type.
type Length float64

// Sentinel errors for strip generation.
var (
	// ErrNilFold is returned when NextStrip is invoked on a nil Fold.
	ErrNilFold = errors.New("fold: fold is nil")

	// ErrNilStrip is returned when an operation receives a nil or released Strip.
	ErrNilStrip = errors.New("fold: strip is nil or released")

	// ErrNilSource is returned when an update kernel receives a nil noise source.
	ErrNilSource = errors.New("fold: gaussian source is nil")

	// ErrLevelRange is returned when a level lies outside [0, MaxLevel],
	// or when a kernel needs interior samples that a level-0 strip lacks.
	ErrLevelRange = errors.New("fold: level out of range")

	// ErrLevelMismatch is returned when the strips passed to MidUpdate or
	// Recalc do not satisfy the required level relationship.
	ErrLevelMismatch = errors.New("fold: inconsistent strip levels")

	// ErrBadState is returned when a Fold carries an unrecognized phase tag.
	ErrBadState = errors.New("fold: unrecognized generation state")

	// ErrClosed is returned by NextStrip after Close.
	ErrClosed = errors.New("fold: fold is closed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fold: invalid option supplied")
)

// Source supplies standard-normal displacement noise. Gaussian must
// return samples with mean 0 and variance 1 for the configured fractal
// dimension to be realized. Substituting a fixed source (see
// gauss.Constant) turns every update into a pure neighbor average,
// which is what determinism tests exploit.
type Source interface {
	Gaussian() float64
}

// Option configures Fold construction via functional arguments.
// If an Option is invalid (e.g. a non-positive base length), it is
// recorded internally and surfaced as ErrOptionViolation when New runs.
type Option func(*Options)

// Options holds the construction parameters of a Fold.
type Options struct {
	// Smooth enables the crease-removal Recalc pass on every update cycle.
	Smooth bool

	// BaseLength is the update-cell size at the finest level; it doubles
	// once per coarser level. Must be > 0.
	BaseLength Length

	// Start is the height of the flat strips seeding every level; long
	// length-scale deformation builds up from this plane over the first
	// iterations.
	Start Height

	// Mean is the mean surface height injected at the level-0 base case.
	Mean Height

	// FractalDim is the fractal dimension driving apparent roughness;
	// noise amplitude at a level scales as length^(2·FractalDim).
	// Must be > 0 and finite.
	FractalDim float64

	// Seed selects the default deterministic noise stream when no Source
	// is injected. Seed 0 maps to a fixed default stream, never the clock.
	Seed int64

	// Source, when non-nil, replaces the seeded default noise source.
	Source Source

	// internal error recorded during option parsing
	err error
}

// Default construction parameters.
const (
	// DefaultFractalDim gives natural-looking ridges without excessive jaggedness.
	DefaultFractalDim = 0.65

	// DefaultBaseLength is the finest-level update-cell size.
	DefaultBaseLength Length = 1.0
)

// DefaultOptions returns an Options with sane defaults:
//   - smoothing enabled
//   - BaseLength = DefaultBaseLength, FractalDim = DefaultFractalDim
//   - flat zero start and zero mean
//   - deterministic default noise stream (Seed == 0 policy), no injected Source
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Smooth:     true,
		BaseLength: DefaultBaseLength,
		Start:      0,
		Mean:       0,
		FractalDim: DefaultFractalDim,
		Seed:       0,
		Source:     nil,
		err:        nil,
	}
}

// WithSmoothing toggles the crease-removal pass. Smoothing rewrites
// previously stored samples with fresh neighbor context; disabling it
// keeps every sample exactly as first computed.
func WithSmoothing(enabled bool) Option {
	return func(o *Options) {
		o.Smooth = enabled
	}
}

// WithBaseLength sets the finest-level update-cell size.
//
//	l > 0: accepted
//	otherwise (zero, negative, NaN): invalid option, ErrOptionViolation
func WithBaseLength(l Length) Option {
	return func(o *Options) {
		if !(l > 0) || math.IsInf(float64(l), 0) {
			o.err = fmt.Errorf("%w: BaseLength must be positive and finite (%v)", ErrOptionViolation, l)
			return
		}
		o.BaseLength = l
	}
}

// WithStart sets the height of the flat strips seeding each level.
func WithStart(h Height) Option {
	return func(o *Options) {
		o.Start = h
	}
}

// WithMean sets the mean height injected at the level-0 base case.
func WithMean(h Height) Option {
	return func(o *Options) {
		o.Mean = h
	}
}

// WithFractalDim sets the fractal dimension.
//
//	d > 0 and finite: accepted
//	otherwise: invalid option, ErrOptionViolation
func WithFractalDim(d float64) Option {
	return func(o *Options) {
		if !(d > 0) || math.IsInf(d, 0) {
			o.err = fmt.Errorf("%w: FractalDim must be positive and finite (%v)", ErrOptionViolation, d)
			return
		}
		o.FractalDim = d
	}
}

// WithSeed selects the deterministic default noise stream.
// Ignored when an explicit Source is injected via WithSource.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSource injects the standard-normal noise capability.
// A nil src keeps the seeded default source.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Source = src
		}
	}
}
