package imagebuf

import "testing"

func TestSetAt8(t *testing.T) {
	im, err := New8(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	im.Set(1, 2, 10, 20, 30)
	r, g, b := im.At(1, 2)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("At(1,2) = (%v,%v,%v), want (10,20,30)", r, g, b)
	}
}

func TestSetClamps8(t *testing.T) {
	im, _ := New8(2, 2)
	im.Set(0, 0, -10, 300, 255.4)
	r, g, b := im.At(0, 0)
	if r != 0 || g != 255 || b != 255 {
		t.Errorf("At(0,0) = (%v,%v,%v), want (0,255,255)", r, g, b)
	}
}

func TestSample_ClampToEdge9Regions(t *testing.T) {
	im, _ := New8(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			im.Set(x, y, float64(x), float64(y), 0)
		}
	}
	tests := []struct {
		name string
		x, y int
		r, g float64
	}{
		{"top-left corner", -5, -5, 0, 0},
		{"top-right corner", 10, -5, 2, 0},
		{"bottom-left corner", -5, 10, 0, 2},
		{"bottom-right corner", 10, 10, 2, 2},
		{"top edge", 1, -5, 1, 0},
		{"bottom edge", 1, 10, 1, 2},
		{"left edge", -5, 1, 0, 1},
		{"right edge", 10, 1, 2, 1},
		{"interior", 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, _ := im.Sample(tt.x, tt.y)
			if r != tt.r || g != tt.g {
				t.Errorf("Sample(%d,%d) = (%v,%v), want (%v,%v)", tt.x, tt.y, r, g, tt.r, tt.g)
			}
		})
	}
}

func TestBitDepth(t *testing.T) {
	im8, _ := New8(1, 1)
	im16, _ := New16(1, 1)
	if im8.BitDepth() != 8 {
		t.Errorf("image8 BitDepth() = %d, want 8", im8.BitDepth())
	}
	if im16.BitDepth() != 16 {
		t.Errorf("image16 BitDepth() = %d, want 16", im16.BitDepth())
	}
}

func TestNewRejectsNonPositive(t *testing.T) {
	if _, err := New8(0, 5); err == nil {
		t.Error("New8(0,5) should fail")
	}
	if _, err := New16(5, -1); err == nil {
		t.Error("New16(5,-1) should fail")
	}
}

func TestNew8Pooled_ZeroedAndUsable(t *testing.T) {
	im, release, err := New8Pooled(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	r, g, b := im.At(0, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("fresh pooled image At(0,0) = (%v,%v,%v), want zeroed", r, g, b)
	}
	im.Set(1, 1, 5, 6, 7)
	r, g, b = im.At(1, 1)
	if r != 5 || g != 6 || b != 7 {
		t.Errorf("At(1,1) = (%v,%v,%v), want (5,6,7)", r, g, b)
	}
}

func TestNew8Pooled_RejectsNonPositive(t *testing.T) {
	if _, _, err := New8Pooled(0, 4); err == nil {
		t.Error("New8Pooled(0,4) should fail")
	}
}
