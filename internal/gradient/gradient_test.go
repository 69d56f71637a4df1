package gradient

import (
	"testing"

	"github.com/fracgo/fracgo/internal/colormodel"
)

func TestNew_EndpointsExact(t *testing.T) {
	stops := []colormodel.Color8{{R: 0, G: 0, B: 0}, {R: 255, G: 136, B: 0}, {R: 255, G: 255, B: 255}}
	g, err := New(stops, 16)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Table[0]; got != stops[0] {
		t.Errorf("first entry = %v, want %v", got, stops[0])
	}
	if got := g.Table[15]; got != stops[1] {
		t.Errorf("entry 15 (end of segment 0) = %v, want %v", got, stops[1])
	}
	if got := g.Table[16]; got != stops[1] {
		t.Errorf("entry 16 (start of segment 1) = %v, want %v", got, stops[1])
	}
	if got := g.Table[31]; got != stops[2] {
		t.Errorf("last entry = %v, want %v", got, stops[2])
	}
	if got := g.Size(); got != 32 {
		t.Errorf("Size() = %d, want 32", got)
	}
}

func TestLookup_Cyclic(t *testing.T) {
	stops := []colormodel.Color8{{R: 0}, {R: 100}}
	g, err := New(stops, 8)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []uint64{0, 1, 7, 100, 12345} {
		a := g.Lookup(i)
		b := g.Lookup(i + uint64(g.Size()))
		if a != b {
			t.Errorf("Lookup(%d) = %v, Lookup(%d) = %v, want equal", i, a, i+uint64(g.Size()), b)
		}
	}
}

func TestNew_RejectsTooFewStops(t *testing.T) {
	if _, err := New([]colormodel.Color8{{}}, 16); err == nil {
		t.Error("New with 1 stop should fail")
	}
}

func TestNew_RejectsTooFewSamples(t *testing.T) {
	stops := []colormodel.Color8{{}, {R: 1}}
	if _, err := New(stops, 1); err == nil {
		t.Error("New with samplesPerTransition=1 should fail")
	}
}

func TestNew_TwoStopDegenerate(t *testing.T) {
	// T=2 is the minimum legal stop count; confirm it produces exactly
	// one segment of samplesPerTransition entries.
	stops := []colormodel.Color8{{R: 10}, {R: 20}}
	g, err := New(stops, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 {
		t.Errorf("Size() = %d, want 4", g.Size())
	}
}
