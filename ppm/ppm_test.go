package ppm

import (
	"bytes"
	"testing"

	"github.com/fracgo/fracgo/internal/imagebuf"
)

func buildGradient8(t *testing.T, w, h int) imagebuf.Image {
	t.Helper()
	img, err := imagebuf.New8(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, float64(x*7%256), float64(y*13%256), float64((x+y)*3%256))
		}
	}
	return img
}

func buildGradient16(t *testing.T, w, h int) imagebuf.Image {
	t.Helper()
	img, err := imagebuf.New16(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, float64(x*777%65536), float64(y*991%65536), float64((x+y)*511%65536))
		}
	}
	return img
}

func TestRoundTrip8Bit(t *testing.T) {
	orig := buildGradient8(t, 11, 7)
	var buf bytes.Buffer
	if err := Encode(&buf, orig); err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assertImagesEqual(t, orig, decoded)
}

func TestRoundTrip16Bit(t *testing.T) {
	orig := buildGradient16(t, 9, 5)
	var buf bytes.Buffer
	if err := Encode(&buf, orig); err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.BitDepth() != 16 {
		t.Fatalf("decoded BitDepth() = %d, want 16", decoded.BitDepth())
	}
	assertImagesEqual(t, orig, decoded)
}

func TestDecode_RejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("P5\n1 1\n255\n\x00\x00\x00")
	if _, err := Decode(buf); err == nil {
		t.Error("expected error for non-P6 magic")
	}
}

func TestDecode_RejectsUnknownMaxval(t *testing.T) {
	buf := bytes.NewBufferString("P6\n1 1\n17\n\x00\x00\x00")
	if _, err := Decode(buf); err == nil {
		t.Error("expected error for unsupported maxval")
	}
}

func assertImagesEqual(t *testing.T, a, b imagebuf.Image) {
	t.Helper()
	if a.Width() != b.Width() || a.Height() != b.Height() {
		t.Fatalf("dims differ: %dx%d vs %dx%d", a.Width(), a.Height(), b.Width(), b.Height())
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			ar, ag, ab := a.At(x, y)
			br, bg, bb := b.At(x, y)
			if ar != br || ag != bg || ab != bb {
				t.Fatalf("pixel (%d,%d) differs: (%v,%v,%v) vs (%v,%v,%v)", x, y, ar, ag, ab, br, bg, bb)
			}
		}
	}
}
