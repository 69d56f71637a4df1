// Package render ties the fractal evaluator, parallel scheduler, colour
// gradient, and separable filter together into the end-to-end pipeline:
// evaluate a value grid, map it to colour, and optionally anti-alias by
// blurring or by oversampling and downscaling.
package render

import (
	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/internal/colormodel"
	"github.com/fracgo/fracgo/internal/evaluator"
	"github.com/fracgo/fracgo/internal/filter"
	"github.com/fracgo/fracgo/internal/fractal"
	"github.com/fracgo/fracgo/internal/gradient"
	"github.com/fracgo/fracgo/internal/imagebuf"
	"github.com/fracgo/fracgo/internal/rect"
	"github.com/fracgo/fracgo/internal/scheduler"
	"github.com/fracgo/fracgo/internal/valuegrid"
)

// AAMode selects the anti-aliasing strategy applied after the value
// grid is mapped to colour.
type AAMode int

const (
	// AANone maps the value grid straight to an image at the requested
	// resolution, with no smoothing.
	AANone AAMode = iota
	// AABlur renders at the requested resolution, then applies a
	// separable Gaussian blur of BlurRadius.
	AABlur
	// AAOversample renders at OversampleFactor times the requested
	// resolution, blurs by OversampleFactor, and downsamples back down,
	// giving area-averaging antialiasing.
	AAOversample
)

// Params is the complete, immutable description of one render: the
// fractal to sample, how to map values to colour, how many workers and
// how finely to adapt, and which anti-aliasing mode to apply.
type Params struct {
	Width, Height int
	Descriptor    *fractal.Descriptor
	Gradient      *gradient.Gradient
	InsideColor   colormodel.Color8
	// Multiplier scales a cell's smoothed escape value before it is
	// truncated to a gradient index: index = uint64(value * Multiplier).
	// It is applied exactly once; config.ParseFullConfig squares the
	// configured value at load time and nothing squares it again.
	Multiplier float64
	BitDepth   int // 8 or 16
	Workers    int // <=0 means GOMAXPROCS
	Q          int // adaptive tile threshold; <=1 means fully dense
	Tau        float64

	AAMode           AAMode
	BlurRadius       int
	OversampleFactor int
}

func (p *Params) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fracerr.Newf(fracerr.InvalidConfig, "render.Params", "non-positive output dimensions %dx%d", p.Width, p.Height)
	}
	if p.Descriptor == nil {
		return fracerr.Newf(fracerr.InvalidConfig, "render.Params", "descriptor is required")
	}
	if p.Gradient == nil {
		return fracerr.Newf(fracerr.InvalidConfig, "render.Params", "gradient is required")
	}
	if p.Multiplier <= 0 {
		return fracerr.Newf(fracerr.InvalidConfig, "render.Params", "multiplier must be positive, got %v", p.Multiplier)
	}
	if p.BitDepth != 8 && p.BitDepth != 16 {
		return fracerr.Newf(fracerr.InvalidConfig, "render.Params", "bit depth must be 8 or 16, got %d", p.BitDepth)
	}
	switch p.AAMode {
	case AANone:
	case AABlur:
		if p.BlurRadius <= 0 {
			return fracerr.Newf(fracerr.InvalidConfig, "render.Params", "blur radius must be positive, got %d", p.BlurRadius)
		}
	case AAOversample:
		if p.OversampleFactor < 2 {
			return fracerr.Newf(fracerr.InvalidConfig, "render.Params", "oversample factor must be >=2, got %d", p.OversampleFactor)
		}
	default:
		return fracerr.Newf(fracerr.InvalidConfig, "render.Params", "unknown AA mode %d", p.AAMode)
	}
	return nil
}

// Render evaluates Params' descriptor over a value grid and returns the
// final, colour-mapped, anti-aliased image.
func Render(p *Params) (imagebuf.Image, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	switch p.AAMode {
	case AAOversample:
		renderW, renderH := p.Width*p.OversampleFactor, p.Height*p.OversampleFactor
		grid, release, err := evaluateGrid(p, renderW, renderH)
		if err != nil {
			return nil, err
		}
		oversampled, err := colorGrid(p, grid, renderW, renderH)
		release()
		if err != nil {
			return nil, err
		}
		return downscale(oversampled, p.OversampleFactor, p.Width, p.Height)
	case AABlur:
		grid, release, err := evaluateGrid(p, p.Width, p.Height)
		if err != nil {
			return nil, err
		}
		img, err := colorGrid(p, grid, p.Width, p.Height)
		release()
		if err != nil {
			return nil, err
		}
		return filter.ApplySeparableRadius(img, p.BlurRadius)
	default:
		grid, release, err := evaluateGrid(p, p.Width, p.Height)
		if err != nil {
			return nil, err
		}
		img, err := colorGrid(p, grid, p.Width, p.Height)
		release()
		return img, err
	}
}

// evaluateGrid allocates a pooled value grid, partitions it across
// workers, and evaluates every cell. The caller must invoke the
// returned release function exactly once after it is done reading the
// grid (colorGrid is always the last reader in this package).
func evaluateGrid(p *Params, w, h int) (*valuegrid.Grid, func(), error) {
	grid, release, err := valuegrid.NewPooled(w, h)
	if err != nil {
		return nil, nil, err
	}
	full := rect.New(0, 0, w-1, h-1)
	err = scheduler.Run(full, p.Workers, func(tile rect.Rectangle) error {
		evaluator.Evaluate(grid, p.Descriptor, tile, p.Q, p.Tau)
		return nil
	})
	if err != nil {
		release()
		return nil, nil, err
	}
	return grid, release, nil
}

func colorGrid(p *Params, grid *valuegrid.Grid, w, h int) (imagebuf.Image, error) {
	var img imagebuf.Image
	var err error
	if p.BitDepth == 16 {
		img, err = imagebuf.New16(w, h)
	} else {
		img, err = imagebuf.New8(w, h)
	}
	if err != nil {
		return nil, err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c8 := valueToColor(grid.At(x, y), p.Gradient, p.InsideColor, p.Multiplier)
			if p.BitDepth == 16 {
				c16 := c8.To16()
				img.Set(x, y, float64(c16.R), float64(c16.G), float64(c16.B))
			} else {
				img.Set(x, y, float64(c8.R), float64(c8.G), float64(c8.B))
			}
		}
	}
	return img, nil
}

func valueToColor(v float64, g *gradient.Gradient, inside colormodel.Color8, multiplier float64) colormodel.Color8 {
	if v == valuegrid.Sentinel {
		return inside
	}
	idx := uint64(v * multiplier)
	return g.Lookup(idx)
}

// downscale blurs src (assumed to be factor times the target resolution
// in each dimension) with a Gaussian of that radius, then subsamples
// the blurred image at the center of each factor x factor block,
// implementing area-averaging antialiasing via two separable passes
// instead of an explicit box filter.
func downscale(src imagebuf.Image, factor, targetW, targetH int) (imagebuf.Image, error) {
	blurred, err := filter.ApplySeparableRadius(src, factor)
	if err != nil {
		return nil, err
	}

	var dst imagebuf.Image
	if src.BitDepth() == 16 {
		dst, err = imagebuf.New16(targetW, targetH)
	} else {
		dst, err = imagebuf.New8(targetW, targetH)
	}
	if err != nil {
		return nil, err
	}

	half := factor / 2
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			r, g, b := blurred.Sample(x*factor+half, y*factor+half)
			dst.Set(x, y, r, g, b)
		}
	}
	return dst, nil
}
