package valuegrid

import "testing"

func TestNew_RejectsNonPositive(t *testing.T) {
	cases := []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 5}, {5, -1}}
	for _, c := range cases {
		if _, err := New(c.w, c.h); err == nil {
			t.Errorf("New(%d,%d) should fail", c.w, c.h)
		}
	}
}

func TestSetAt(t *testing.T) {
	g, err := New(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(2, 1, 7.5)
	if got := g.At(2, 1); got != 7.5 {
		t.Errorf("At(2,1) = %v, want 7.5", got)
	}
	// every other cell should remain zero
	if got := g.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %v, want 0", got)
	}
}

func TestNewPooled_RejectsNonPositive(t *testing.T) {
	if _, _, err := NewPooled(0, 5); err == nil {
		t.Error("NewPooled(0,5) should fail")
	}
}

func TestNewPooled_ZeroedAndUsable(t *testing.T) {
	g, release, err := NewPooled(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	if got := g.At(0, 0); got != 0 {
		t.Errorf("fresh pooled grid At(0,0) = %v, want 0", got)
	}
	g.Set(2, 3, 9.5)
	if got := g.At(2, 3); got != 9.5 {
		t.Errorf("At(2,3) = %v, want 9.5", got)
	}
}

func TestNewPooled_ReleaseThenReacquireIsClean(t *testing.T) {
	g, release, err := NewPooled(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, 123)
	release()

	g2, release2, err := NewPooled(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer release2()
	if got := g2.At(0, 0); got != 0 {
		t.Errorf("reacquired grid At(0,0) = %v, want 0 (zeroed on acquire)", got)
	}
}

func TestValuesAreSentinelOrNonNegative(t *testing.T) {
	g, err := New(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, Sentinel)
	g.Set(1, 1, 3.25)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if v != Sentinel && v < 0 {
				t.Fatalf("At(%d,%d) = %v, want sentinel or >=0", x, y, v)
			}
		}
	}
}
