// Package evaluator implements the adaptive quadtree-style evaluator:
// for Q=1 it computes every grid cell pointwise; for Q>1 it subdivides
// a tile until every leaf's edges are at most Q cells long, then
// decides per leaf whether to bilinearly interpolate from the four
// corner values or compute every interior cell densely.
//
// The scheduler guarantees that the tile passed to Evaluate is one of
// its own disjoint partition rectangles, and that Phase A's subdivision
// never crosses that boundary (it only ever subdivides within the
// tile). So every pixel is owned by exactly one worker and exactly one
// leaf tile: there is no cross-worker boundary-write question to
// resolve, by construction rather than by a runtime idempotence check.
package evaluator

import (
	"github.com/fracgo/fracgo/internal/fractal"
	"github.com/fracgo/fracgo/internal/rect"
	"github.com/fracgo/fracgo/internal/valuegrid"
)

// Evaluate populates grid's cells within tile, using fractal d. When
// q<=1, every cell is computed pointwise. When q>1, the tile is
// adaptively subdivided and leaves flatter than tau are interpolated
// rather than computed.
func Evaluate(grid *valuegrid.Grid, d *fractal.Descriptor, tile rect.Rectangle, q int, tau float64) {
	if q <= 1 {
		evaluateDenseRect(grid, d, tile)
		return
	}

	work := rect.NewQueue()
	work.Push(tile)
	var leaves []rect.Rectangle
	for work.Len() > 0 {
		r, _ := work.Pop()
		if r.Width() > q || r.Height() > q {
			a, b := r.CutInHalf()
			work.Push(a)
			work.Push(b)
		} else {
			leaves = append(leaves, r)
		}
	}
	for _, leaf := range leaves {
		evaluateLeaf(grid, d, leaf, tau)
	}
}

// evaluateDenseRect computes every cell in r pointwise.
func evaluateDenseRect(grid *valuegrid.Grid, d *fractal.Descriptor, r rect.Rectangle) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			grid.Set(x, y, d.Value(d.WorldPoint(x, y, grid.W, grid.H)))
		}
	}
}

func cornerValue(grid *valuegrid.Grid, d *fractal.Descriptor, x, y int) float64 {
	return d.Value(d.WorldPoint(x, y, grid.W, grid.H))
}

// evaluateLeaf decides whether leaf is interpolable and fills it
// accordingly. corners is ordered top-left, top-right, bottom-left,
// bottom-right.
func evaluateLeaf(grid *valuegrid.Grid, d *fractal.Descriptor, leaf rect.Rectangle, tau float64) {
	corners := [4]float64{
		cornerValue(grid, d, leaf.X1, leaf.Y1),
		cornerValue(grid, d, leaf.X2, leaf.Y1),
		cornerValue(grid, d, leaf.X1, leaf.Y2),
		cornerValue(grid, d, leaf.X2, leaf.Y2),
	}

	sentinelCount := 0
	for _, v := range corners {
		if v == valuegrid.Sentinel {
			sentinelCount++
		}
	}

	switch {
	case sentinelCount == 4:
		fillConstant(grid, leaf, valuegrid.Sentinel)
	case sentinelCount > 0:
		// Spans the set boundary: -1 is not numerically comparable with
		// escape values, so the tile must be computed densely.
		fillDenseReuseCorners(grid, d, leaf, corners)
	default:
		if meanAbsDeviation(corners) < tau {
			fillBilinear(grid, leaf, corners)
		} else {
			fillDenseReuseCorners(grid, d, leaf, corners)
		}
	}
}

func meanAbsDeviation(v [4]float64) float64 {
	avg := (v[0] + v[1] + v[2] + v[3]) / 4
	sum := 0.0
	for _, x := range v {
		d := x - avg
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum / 4
}

func fillConstant(grid *valuegrid.Grid, leaf rect.Rectangle, v float64) {
	for y := leaf.Y1; y <= leaf.Y2; y++ {
		for x := leaf.X1; x <= leaf.X2; x++ {
			grid.Set(x, y, v)
		}
	}
}

func fillBilinear(grid *valuegrid.Grid, leaf rect.Rectangle, corners [4]float64) {
	w, h := leaf.Width(), leaf.Height()
	for y := leaf.Y1; y <= leaf.Y2; y++ {
		ny := 0.0
		if h > 1 {
			ny = float64(y-leaf.Y1) / float64(h-1)
		}
		for x := leaf.X1; x <= leaf.X2; x++ {
			nx := 0.0
			if w > 1 {
				nx = float64(x-leaf.X1) / float64(w-1)
			}
			grid.Set(x, y, bilinear(corners, nx, ny))
		}
	}
}

func bilinear(v [4]float64, x, y float64) float64 {
	top := v[0]*(1-x) + v[1]*x
	bottom := v[2]*(1-x) + v[3]*x
	return top*(1-y) + bottom*y
}

// fillDenseReuseCorners computes every cell in leaf via d.Value, except
// the four corners, whose values were already computed.
func fillDenseReuseCorners(grid *valuegrid.Grid, d *fractal.Descriptor, leaf rect.Rectangle, corners [4]float64) {
	for y := leaf.Y1; y <= leaf.Y2; y++ {
		for x := leaf.X1; x <= leaf.X2; x++ {
			switch {
			case x == leaf.X1 && y == leaf.Y1:
				grid.Set(x, y, corners[0])
			case x == leaf.X2 && y == leaf.Y1:
				grid.Set(x, y, corners[1])
			case x == leaf.X1 && y == leaf.Y2:
				grid.Set(x, y, corners[2])
			case x == leaf.X2 && y == leaf.Y2:
				grid.Set(x, y, corners[3])
			default:
				grid.Set(x, y, d.Value(d.WorldPoint(x, y, grid.W, grid.H)))
			}
		}
	}
}
