// Package fractal implements the per-point escape-time evaluation and
// smoothed iteration count for the Mandelbrot and Julia sets.
package fractal

import (
	"math"

	"github.com/fracgo/fracgo/fracerr"
)

// Kind selects which escape-time recurrence a Descriptor evaluates.
type Kind int

const (
	Mandelbrot Kind = iota
	Julia
)

// RealRect is the rectangle in the complex plane a value grid samples,
// with (X1,Y1) the bottom-left (or top-left, by caller convention) and
// (X2,Y2) the opposite corner.
type RealRect struct {
	X1, Y1, X2, Y2 float64
}

// Sentinel is the value grid marker meaning "point remained bounded
// through N_max iterations; treat as inside the set".
const Sentinel = -1

// Descriptor is an immutable fractal parameter record, shared read-only
// across workers. C is only meaningful for Julia.
type Descriptor struct {
	Kind  Kind
	C     complex128
	Rect  RealRect
	R     float64 // escape radius threshold, compared against |z|^2 (already squared)
	NMax  int
}

// New validates and constructs a Descriptor.
func New(kind Kind, c complex128, rect RealRect, r float64, nMax int) (*Descriptor, error) {
	if r <= 0 {
		return nil, fracerr.Newf(fracerr.InvalidConfig, "fractal.New", "escape radius must be positive, got %v", r)
	}
	if nMax <= 0 {
		return nil, fracerr.Newf(fracerr.InvalidConfig, "fractal.New", "N_max must be positive, got %d", nMax)
	}
	return &Descriptor{Kind: kind, C: c, Rect: rect, R: r, NMax: nMax}, nil
}

// WorldPoint maps a pixel coordinate (px,py) within a (w,h) grid to its
// complex-plane pre-image inside d.Rect, by linear interpolation.
func (d *Descriptor) WorldPoint(px, py, w, h int) complex128 {
	var fx, fy float64
	if w > 1 {
		fx = float64(px) / float64(w-1)
	}
	if h > 1 {
		fy = float64(py) / float64(h-1)
	}
	re := d.Rect.X1 + fx*(d.Rect.X2-d.Rect.X1)
	im := d.Rect.Y1 + fy*(d.Rect.Y2-d.Rect.Y1)
	return complex(re, im)
}

// Value computes the escape-time value of the recurrence at point, per
// d.Kind: Mandelbrot starts z0=0 with c=point; Julia starts z0=point
// with c=d.C. It iterates z <- z^2+c until either N_max iterations have
// been performed or |z|^2 >= d.R, whichever comes first.
//
// If the point never escapes, it returns Sentinel (-1). Otherwise it
// returns the smoothed escape count
//
//	v = sqrt(n + log(log(R)/log(|z|^2)) / log(2))
//
// The degenerate case |z|^2 == R gives log(1) == 0 with no special
// casing required, since math.Log(1) is exactly 0 in Go.
func (d *Descriptor) Value(point complex128) float64 {
	var z, c complex128
	switch d.Kind {
	case Julia:
		z = point
		c = d.C
	default:
		z = 0
		c = point
	}

	n := 0
	escaped := false
	for i := 0; i < d.NMax; i++ {
		z = z*z + c
		n = i + 1
		if normSq(z) >= d.R {
			escaped = true
			break
		}
	}
	if !escaped {
		return Sentinel
	}

	logR := math.Log(d.R)
	logNorm := math.Log(normSq(z))
	v := float64(n) + math.Log(logR/logNorm)/math.Log(2)
	if v < 0 {
		v = 0
	}
	return math.Sqrt(v)
}

func normSq(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
