// Package rect implements integer-pixel rectangle algebra: construction,
// halving along the longer dimension, and N-way partitioning. It also
// provides a FIFO queue of rectangles used to drive the adaptive
// evaluator's subdivision work list.
package rect

import "github.com/fracgo/fracgo/fracerr"

// Rectangle is an inclusive-inclusive integer rectangle: X1 <= X2 and
// Y1 <= Y2. It is expected to fit within the bounds of whatever grid or
// image it was derived from; callers are responsible for that invariant.
type Rectangle struct {
	X1, Y1, X2, Y2 int
}

// New constructs a Rectangle, ordering corners so that X1<=X2 and Y1<=Y2.
func New(x1, y1, x2, y2 int) Rectangle {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rectangle{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the number of columns covered by r.
func (r Rectangle) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered by r.
func (r Rectangle) Height() int { return r.Y2 - r.Y1 + 1 }

// Area returns the number of cells covered by r.
func (r Rectangle) Area() int { return r.Width() * r.Height() }

// CutInHalf splits r along its longer dimension into two disjoint
// rectangles whose union is r. On a tie (a square rectangle) it splits
// along the x dimension. The first half gets floor(size/2) cells; the
// second half starts immediately after it, so the two never overlap.
func (r Rectangle) CutInHalf() (Rectangle, Rectangle) {
	if r.Width() >= r.Height() {
		half := r.Width() / 2
		first := Rectangle{r.X1, r.Y1, r.X1 + half - 1, r.Y2}
		second := Rectangle{r.X1 + half, r.Y1, r.X2, r.Y2}
		return first, second
	}
	half := r.Height() / 2
	first := Rectangle{r.X1, r.Y1, r.X2, r.Y1 + half - 1}
	second := Rectangle{r.X1, r.Y1 + half, r.X2, r.Y2}
	return first, second
}

// CutInN partitions r into exactly n disjoint rectangles whose union is
// r, using a deterministic greedy algorithm: repeatedly halve the
// largest-area rectangle among the pieces produced so far (ties broken
// by insertion order), until there are exactly n pieces. This always
// succeeds when 1<=n<=r.Area(), because each split increases the piece
// count by exactly one and a piece can always be halved so long as its
// area is at least 2 (equivalently, its longer dimension is at least 2).
//
// It fails with an InvalidArgument error when n is not in [1, r.Area()].
func (r Rectangle) CutInN(n int) ([]Rectangle, error) {
	if n < 1 || n > r.Area() {
		return nil, fracerr.Newf(fracerr.InvalidArgument, "rect.CutInN",
			"cannot partition a %dx%d rectangle (area %d) into %d parts", r.Width(), r.Height(), r.Area(), n)
	}
	pieces := []Rectangle{r}
	for len(pieces) < n {
		maxIdx := 0
		maxArea := pieces[0].Area()
		for i := 1; i < len(pieces); i++ {
			if a := pieces[i].Area(); a > maxArea {
				maxArea = a
				maxIdx = i
			}
		}
		target := pieces[maxIdx]
		first, second := target.CutInHalf()
		pieces = append(pieces[:maxIdx], pieces[maxIdx+1:]...)
		pieces = append(pieces, first, second)
	}
	return pieces, nil
}
