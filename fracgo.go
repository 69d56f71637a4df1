package fracgo

import (
	"github.com/fracgo/fracgo/internal/colormodel"
	"github.com/fracgo/fracgo/internal/fractal"
	"github.com/fracgo/fracgo/internal/gradient"
	"github.com/fracgo/fracgo/internal/imagebuf"
	"github.com/fracgo/fracgo/internal/render"
)

// Re-exported leaf types, so callers need only import this package for
// the common path.
type (
	Kind        = fractal.Kind
	RealRect    = fractal.RealRect
	Descriptor  = fractal.Descriptor
	Gradient    = gradient.Gradient
	Color8      = colormodel.Color8
	Image       = imagebuf.Image
	AAMode      = render.AAMode
)

const (
	Mandelbrot = fractal.Mandelbrot
	Julia      = fractal.Julia

	AANone       = render.AANone
	AABlur       = render.AABlur
	AAOversample = render.AAOversample
)

// NewDescriptor validates and constructs a fractal descriptor.
func NewDescriptor(kind Kind, c complex128, rect RealRect, escapeRadius float64, nMax int) (*Descriptor, error) {
	return fractal.New(kind, c, rect, escapeRadius, nMax)
}

// NewGradient builds a gradient table from stop colours.
func NewGradient(stops []Color8, samplesPerTransition int) (*Gradient, error) {
	return gradient.New(stops, samplesPerTransition)
}

// Options is the complete, caller-facing description of one render.
type Options struct {
	Width, Height int
	Descriptor    *Descriptor
	Gradient      *Gradient
	SpaceColour   Color8 // colour for points inside the set (the sentinel)

	// Multiplier scales a cell's smoothed escape value before gradient
	// lookup. Callers loading it from a text config should square it
	// once at load time and pass the squared value here unchanged;
	// Render never squares it again.
	Multiplier float64

	BitDepth int // 8 or 16; zero defaults to 8

	Workers int // <=0 means GOMAXPROCS
	Q       int // adaptive tile threshold; <=1 means fully dense
	Tau     float64

	AAMode           AAMode
	BlurRadius       int
	OversampleFactor int
}

// Render evaluates opts' descriptor across a value grid and returns the
// final, colour-mapped, anti-aliased image.
func Render(opts *Options) (Image, error) {
	bitDepth := opts.BitDepth
	if bitDepth == 0 {
		bitDepth = 8
	}
	return render.Render(&render.Params{
		Width:            opts.Width,
		Height:           opts.Height,
		Descriptor:       opts.Descriptor,
		Gradient:         opts.Gradient,
		InsideColor:      opts.SpaceColour,
		Multiplier:       opts.Multiplier,
		BitDepth:         bitDepth,
		Workers:          opts.Workers,
		Q:                opts.Q,
		Tau:              opts.Tau,
		AAMode:           opts.AAMode,
		BlurRadius:       opts.BlurRadius,
		OversampleFactor: opts.OversampleFactor,
	})
}

// AutoOversample picks an oversampling factor from the output
// resolution when the caller wants anti-aliasing without tuning a
// factor by hand: smaller images get a larger factor since aliasing is
// proportionally more visible at low resolution.
func AutoOversample(width, height int) int {
	dim := width
	if height < dim {
		dim = height
	}
	switch {
	case dim < 200:
		return 4
	case dim < 800:
		return 3
	default:
		return 2
	}
}
