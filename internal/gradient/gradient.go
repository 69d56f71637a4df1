// Package gradient implements the piecewise-linear colour ramp used to
// map a fractal value's index into an output colour.
package gradient

import (
	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/internal/colormodel"
)

// Gradient is a precomputed table of (len(stops)-1)*samplesPerTransition
// colours, built by linearly interpolating between consecutive stops.
// Lookup is cyclic: index i and i+len(Table) return the same colour.
type Gradient struct {
	Table []colormodel.Color8
}

// New builds a gradient table from at least two stop colours and a
// samples-per-transition count S>=2. Each transition segment has S
// entries; entry i within a segment is the linear interpolation of the
// segment's two stops at fraction i/(S-1), so entry 0 is exactly the
// first stop and entry S-1 is exactly the second stop: both stop
// colours are exact samples, and a stop shared by two segments appears
// twice — once as the last sample of one segment, once as the first of
// the next.
func New(stops []colormodel.Color8, samplesPerTransition int) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fracerr.Newf(fracerr.InvalidConfig, "gradient.New", "need at least 2 stop colours, got %d", len(stops))
	}
	if samplesPerTransition < 2 {
		return nil, fracerr.Newf(fracerr.InvalidConfig, "gradient.New", "samples-per-transition must be >= 2, got %d", samplesPerTransition)
	}
	n := samplesPerTransition
	table := make([]colormodel.Color8, (len(stops)-1)*n)
	for seg := 0; seg < len(stops)-1; seg++ {
		c1, c2 := stops[seg], stops[seg+1]
		for i := 0; i < n; i++ {
			w2 := float64(i) / float64(n-1)
			table[seg*n+i] = colormodel.Mix8(c1, c2, 1-w2, w2)
		}
	}
	return &Gradient{Table: table}, nil
}

// Lookup returns the colour at index, taken modulo the table size to
// give cyclic colouring for high-iteration points.
func (g *Gradient) Lookup(index uint64) colormodel.Color8 {
	return g.Table[index%uint64(len(g.Table))]
}

// Size returns the number of entries in the gradient table.
func (g *Gradient) Size() int { return len(g.Table) }
