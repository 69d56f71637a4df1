// Package valuegrid implements the dense 2D grid of escape-time samples
// that the adaptive evaluator populates and the render pipeline
// consumes. The sentinel value -1 marks a point that never escaped;
// every other value is a finite, non-negative smoothed escape count.
package valuegrid

import (
	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/internal/pool"
)

// Sentinel marks a grid cell whose point is considered inside the set.
const Sentinel = -1

// Grid is a dense row-major W x H array of escape-time values, owned by
// the render pipeline and created fresh per render.
type Grid struct {
	W, H int
	Data []float64
}

// New allocates a zeroed (all-sentinel-free, all-zero) grid of the
// given dimensions.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fracerr.Newf(fracerr.InvalidArgument, "valuegrid.New", "non-positive dimensions %dx%d", w, h)
	}
	return &Grid{W: w, H: h, Data: make([]float64, w*h)}, nil
}

// NewPooled allocates a grid whose backing array is borrowed from the
// package pool's float64 buffers instead of a fresh make(). A render's
// value grid is allocated once, fully overwritten cell-by-cell by the
// scheduler and evaluator, read once by colour-mapping, and then
// discarded — exactly the short-lived, fully-overwritten lifecycle the
// pool is meant to amortize, and the grid is often the single largest
// allocation in a render (an oversampled grid can be tens of megabytes).
// release must be called exactly once, after the grid is no longer
// needed.
func NewPooled(w, h int) (*Grid, func(), error) {
	if w <= 0 || h <= 0 {
		return nil, nil, fracerr.Newf(fracerr.InvalidArgument, "valuegrid.NewPooled", "non-positive dimensions %dx%d", w, h)
	}
	data := pool.GetFloat64(w * h)
	for i := range data {
		data[i] = 0
	}
	release := func() { pool.PutFloat64(data) }
	return &Grid{W: w, H: h, Data: data}, release, nil
}

// At returns the value at (x,y). The caller must guarantee the
// coordinate is in bounds.
func (g *Grid) At(x, y int) float64 { return g.Data[y*g.W+x] }

// Set writes the value at (x,y). The caller must guarantee the
// coordinate is in bounds.
func (g *Grid) Set(x, y int, v float64) { g.Data[y*g.W+x] = v }
