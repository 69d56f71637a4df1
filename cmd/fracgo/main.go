// Command fracgo renders a Mandelbrot or Julia fractal to a PPM image.
//
// Usage:
//
//	fracgo -c fractal.cfg -o out.ppm -x 800 -y 600
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"

	"github.com/fracgo/fracgo"
	"github.com/fracgo/fracgo/config"
	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/ppm"
	"github.com/fracgo/fracgo/trace"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fracgo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fracgo", flag.ContinueOnError)
	quiet := fs.Bool("q", false, "quiet: suppress all but error output")
	verbose := fs.Bool("v", false, "verbose: print progress diagnostics")
	debug := fs.Bool("d", false, "debug: print additional diagnostics")
	workers := fs.Int("j", 0, "worker count (0 = use all CPUs)")
	configPath := fs.String("c", "", "fractal config or descriptor file (required)")
	outputPath := fs.String("o", "out.ppm", "output PPM path")
	width := fs.Int("x", 800, "output width")
	height := fs.Int("y", 600, "output height")
	q := fs.Int("i", 1, "quad interpolation cap Q")
	tau := fs.Float64("t", 0.01, "dissimilarity threshold tau")
	blurRadius := fs.Int("b", 0, "Gaussian blur radius (mutually exclusive with -s)")
	oversample := fs.Int("s", 0, "oversampling factor (mutually exclusive with -b)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *quiet && *verbose {
		return fracerr.Newf(fracerr.InvalidConfig, "fracgo", "-q and -v are mutually exclusive")
	}
	if *blurRadius > 0 && *oversample > 0 {
		return fracerr.Newf(fracerr.InvalidConfig, "fracgo", "-b and -s are mutually exclusive")
	}
	if *configPath == "" {
		return fracerr.Newf(fracerr.InvalidConfig, "fracgo", "-c is required")
	}

	switch {
	case *quiet:
		trace.SetLevel(trace.Quiet)
	case *verbose || *debug:
		trace.SetLevel(trace.Verbose)
	default:
		trace.SetLevel(trace.Normal)
	}

	desc, rc, err := loadFractalFile(*configPath)
	if err != nil {
		return err
	}
	trace.Normalf("loaded fractal config from %s", *configPath)

	opts := &fracgo.Options{
		Width: *width, Height: *height,
		Descriptor:  desc,
		SpaceColour: rc.SpaceColour,
		Multiplier:  rc.Multiplier,
		Workers:     *workers,
		Q:           *q,
		Tau:         *tau,
	}
	opts.Gradient, err = fracgo.NewGradient(rc.Stops, 1024)
	if err != nil {
		return err
	}

	switch {
	case *blurRadius > 0:
		opts.AAMode = fracgo.AABlur
		opts.BlurRadius = *blurRadius
	case *oversample > 0:
		opts.AAMode = fracgo.AAOversample
		opts.OversampleFactor = *oversample
	default:
		opts.AAMode = fracgo.AANone
	}

	trace.Verbosef("rendering %dx%d with %d workers, Q=%d tau=%v", *width, *height, *workers, *q, *tau)
	img, err := fracgo.Render(opts)
	if err != nil {
		return err
	}

	f, err := os.Create(*outputPath)
	if err != nil {
		return fracerr.New(fracerr.FileIO, "fracgo", err)
	}
	defer f.Close()
	if err := ppm.Encode(f, img); err != nil {
		return err
	}
	trace.Normalf("wrote %s", *outputPath)
	return nil
}

// loadFractalFile reads path and tries both supported text formats: the
// bare fractal-descriptor format (MANDELBROT/JULIA ... geometry) and the
// full configuration format (geometry + render parameters). It detects
// which one it has by peeking the first token, tokenizing with shlex so
// that tokens may be shell-quoted.
func loadFractalFile(path string) (*fracgo.Descriptor, *config.RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fracerr.New(fracerr.FileIO, "fracgo", err)
	}

	tokens, err := shlex.Split(string(data))
	if err != nil {
		return nil, nil, fracerr.New(fracerr.InvalidConfig, "fracgo", err)
	}
	if len(tokens) == 0 {
		return nil, nil, fracerr.Newf(fracerr.InvalidConfig, "fracgo", "%s is empty", path)
	}

	switch strings.ToUpper(tokens[0]) {
	case "MANDELBROT", "JULIA":
		desc, err := config.ParseDescriptor(tokens)
		if err != nil {
			return nil, nil, err
		}
		return desc, config.DefaultRenderConfig(), nil
	default:
		desc, rc, err := config.ParseFullConfig(tokens)
		if err != nil {
			return nil, nil, err
		}
		return desc, rc, nil
	}
}
