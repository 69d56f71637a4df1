// Package config parses the two whitespace-token text formats the core
// renderer is configured from: the full rendering-configuration format
// (geometry, escape parameters, multiplier, space colour, gradient
// stops) and the bare fractal-descriptor format (kind, optional Julia
// constant, geometry, escape parameters). Tokenization itself is the
// caller's concern (see cmd/fracgo) — these functions consume an
// already-split token slice so they can be tested without any I/O.
package config

import (
	"strconv"
	"strings"

	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/internal/colormodel"
	"github.com/fracgo/fracgo/internal/fractal"
)

// RenderConfig carries the render-side parameters (as opposed to the
// fractal geometry, which ends up in a *fractal.Descriptor): the
// gradient stop colours, the space (inside-set) colour, and the
// value-to-index multiplier.
type RenderConfig struct {
	Multiplier  float64
	SpaceColour colormodel.Color8
	Stops       []colormodel.Color8
}

// ParseFullConfig parses the generic "configuration input" token format:
// centerX, centerY, spanX(>0), spanY(>0), escape radius(>0), N_max(uint),
// multiplier(>0), space colour (hex), T(>=2), then T hex colours. This
// format has no kind prefix, so the resulting descriptor is always
// Mandelbrot.
//
// The multiplier is squared here, once, at load time — "multiplier (>0;
// squared by the loader)" — and the squared value is what ends up in
// RenderConfig.Multiplier and is passed to render.Params directly, with
// no further squaring at render time.
func ParseFullConfig(tokens []string) (*fractal.Descriptor, *RenderConfig, error) {
	const op = "config.ParseFullConfig"
	const minTokens = 9 // centerX..T, before T colours
	if len(tokens) < minTokens {
		return nil, nil, fracerr.Newf(fracerr.InvalidConfig, op, "expected at least %d tokens, got %d", minTokens, len(tokens))
	}

	centerX, err := parseFloat(op, tokens[0], "centerX")
	if err != nil {
		return nil, nil, err
	}
	centerY, err := parseFloat(op, tokens[1], "centerY")
	if err != nil {
		return nil, nil, err
	}
	spanX, err := parsePositiveFloat(op, tokens[2], "spanX")
	if err != nil {
		return nil, nil, err
	}
	spanY, err := parsePositiveFloat(op, tokens[3], "spanY")
	if err != nil {
		return nil, nil, err
	}
	r, err := parsePositiveFloat(op, tokens[4], "escape radius")
	if err != nil {
		return nil, nil, err
	}
	nMax, err := parsePositiveInt(op, tokens[5], "N_max")
	if err != nil {
		return nil, nil, err
	}
	multiplier, err := parsePositiveFloat(op, tokens[6], "multiplier")
	if err != nil {
		return nil, nil, err
	}
	spaceColour, err := parseHexColour8(op, tokens[7])
	if err != nil {
		return nil, nil, err
	}
	t, err := parsePositiveInt(op, tokens[8], "T")
	if err != nil {
		return nil, nil, err
	}
	if t < 2 {
		return nil, nil, fracerr.Newf(fracerr.InvalidConfig, op, "T must be >= 2, got %d", t)
	}
	if len(tokens) != minTokens+t {
		return nil, nil, fracerr.Newf(fracerr.InvalidConfig, op, "expected %d stop colours, got %d remaining tokens", t, len(tokens)-minTokens)
	}

	stops := make([]colormodel.Color8, t)
	for i := 0; i < t; i++ {
		c, err := parseHexColour8(op, tokens[minTokens+i])
		if err != nil {
			return nil, nil, err
		}
		stops[i] = c
	}

	rect := rectFromCenterSpan(centerX, centerY, spanX, spanY)
	d, err := fractal.New(fractal.Mandelbrot, 0, rect, r, nMax)
	if err != nil {
		return nil, nil, fracerr.New(fracerr.InvalidConfig, op, err)
	}

	return d, &RenderConfig{
		Multiplier:  multiplier * multiplier,
		SpaceColour: spaceColour,
		Stops:       stops,
	}, nil
}

// ParseDescriptor parses the fractal-descriptor token format: MANDELBROT
// or JULIA, then (for JULIA) Re(c) Im(c), then centerX, centerY, spanX,
// spanY, escape radius, N_max. It carries no render-side parameters;
// callers combine the result with a RenderConfig of their own (see
// DefaultRenderConfig).
func ParseDescriptor(tokens []string) (*fractal.Descriptor, error) {
	const op = "config.ParseDescriptor"
	if len(tokens) < 1 {
		return nil, fracerr.Newf(fracerr.InvalidConfig, op, "empty descriptor")
	}

	var kind fractal.Kind
	var c complex128
	rest := tokens[1:]
	switch strings.ToUpper(tokens[0]) {
	case "MANDELBROT":
		kind = fractal.Mandelbrot
	case "JULIA":
		kind = fractal.Julia
		if len(rest) < 2 {
			return nil, fracerr.Newf(fracerr.InvalidConfig, op, "JULIA descriptor missing Re(c)/Im(c)")
		}
		re, err := parseFloat(op, rest[0], "Re(c)")
		if err != nil {
			return nil, err
		}
		im, err := parseFloat(op, rest[1], "Im(c)")
		if err != nil {
			return nil, err
		}
		c = complex(re, im)
		rest = rest[2:]
	default:
		return nil, fracerr.Newf(fracerr.InvalidConfig, op, "unknown fractal kind %q, want MANDELBROT or JULIA", tokens[0])
	}

	if len(rest) != 6 {
		return nil, fracerr.Newf(fracerr.InvalidConfig, op, "expected 6 geometry tokens after kind/constant, got %d", len(rest))
	}
	centerX, err := parseFloat(op, rest[0], "centerX")
	if err != nil {
		return nil, err
	}
	centerY, err := parseFloat(op, rest[1], "centerY")
	if err != nil {
		return nil, err
	}
	spanX, err := parsePositiveFloat(op, rest[2], "spanX")
	if err != nil {
		return nil, err
	}
	spanY, err := parsePositiveFloat(op, rest[3], "spanY")
	if err != nil {
		return nil, err
	}
	r, err := parsePositiveFloat(op, rest[4], "escape radius")
	if err != nil {
		return nil, err
	}
	nMax, err := parsePositiveInt(op, rest[5], "N_max")
	if err != nil {
		return nil, err
	}

	rect := rectFromCenterSpan(centerX, centerY, spanX, spanY)
	d, err := fractal.New(kind, c, rect, r, nMax)
	if err != nil {
		return nil, fracerr.New(fracerr.InvalidConfig, op, err)
	}
	return d, nil
}

// DefaultRenderConfig returns the renderer's built-in gradient and
// space colour, used when only a bare fractal descriptor is supplied
// and no full render configuration is available.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Multiplier:  1,
		SpaceColour: colormodel.Color8{},
		Stops: []colormodel.Color8{
			{R: 0, G: 0, B: 80},
			{R: 255, G: 160, B: 0},
			{R: 255, G: 255, B: 255},
		},
	}
}

func rectFromCenterSpan(centerX, centerY, spanX, spanY float64) fractal.RealRect {
	return fractal.RealRect{
		X1: centerX - spanX/2,
		Y1: centerY - spanY/2,
		X2: centerX + spanX/2,
		Y2: centerY + spanY/2,
	}
}

func parseFloat(op, tok, field string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fracerr.Newf(fracerr.InvalidConfig, op, "%s: %q is not a number", field, tok)
	}
	return v, nil
}

func parsePositiveFloat(op, tok, field string) (float64, error) {
	v, err := parseFloat(op, tok, field)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fracerr.Newf(fracerr.InvalidConfig, op, "%s must be positive, got %v", field, v)
	}
	return v, nil
}

func parsePositiveInt(op, tok, field string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fracerr.Newf(fracerr.InvalidConfig, op, "%s: %q is not an integer", field, tok)
	}
	if v <= 0 {
		return 0, fracerr.Newf(fracerr.InvalidConfig, op, "%s must be positive, got %d", field, v)
	}
	return v, nil
}

func parseHexColour8(op, tok string) (colormodel.Color8, error) {
	tok = strings.TrimPrefix(tok, "0x")
	tok = strings.TrimPrefix(tok, "0X")
	switch len(tok) {
	case 6:
		v, err := strconv.ParseUint(tok, 16, 32)
		if err != nil {
			return colormodel.Color8{}, fracerr.Newf(fracerr.InvalidConfig, op, "invalid 24-bit hex colour %q", tok)
		}
		return colormodel.Color8FromUint32(uint32(v)), nil
	case 12:
		v, err := strconv.ParseUint(tok, 16, 64)
		if err != nil {
			return colormodel.Color8{}, fracerr.Newf(fracerr.InvalidConfig, op, "invalid 48-bit hex colour %q", tok)
		}
		return colormodel.Color16FromUint64(v).To8(), nil
	default:
		return colormodel.Color8{}, fracerr.Newf(fracerr.InvalidConfig, op, "hex colour %q must be 6 or 12 hex digits", tok)
	}
}
