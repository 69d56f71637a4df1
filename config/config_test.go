package config

import (
	"strings"
	"testing"

	"github.com/fracgo/fracgo/internal/fractal"
)

func TestParseFullConfig_Valid(t *testing.T) {
	tokens := strings.Fields("-0.75 0.0 2.5 2.4 4 256 2.0 000000 3 000000 FF8800 FFFFFF")
	d, rc, err := ParseFullConfig(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != fractal.Mandelbrot {
		t.Errorf("kind = %v, want Mandelbrot", d.Kind)
	}
	if d.NMax != 256 {
		t.Errorf("NMax = %d, want 256", d.NMax)
	}
	// multiplier is squared once at load time: 2.0^2 = 4.0
	if rc.Multiplier != 4.0 {
		t.Errorf("Multiplier = %v, want 4.0 (squared once)", rc.Multiplier)
	}
	if len(rc.Stops) != 3 {
		t.Errorf("Stops = %d, want 3", len(rc.Stops))
	}
}

func TestParseFullConfig_RejectsBadStopCount(t *testing.T) {
	tokens := strings.Fields("-0.75 0.0 2.5 2.4 4 256 2.0 000000 3 000000 FF8800")
	if _, _, err := ParseFullConfig(tokens); err == nil {
		t.Error("expected error when T doesn't match the remaining token count")
	}
}

func TestParseFullConfig_RejectsNonPositiveSpan(t *testing.T) {
	tokens := strings.Fields("-0.75 0.0 0 2.4 4 256 2.0 000000 2 000000 FFFFFF")
	if _, _, err := ParseFullConfig(tokens); err == nil {
		t.Error("expected error for spanX=0")
	}
}

func TestParseDescriptor_Mandelbrot(t *testing.T) {
	tokens := strings.Fields("MANDELBROT -2 -1.2 2.5 2.4 4 256")
	d, err := ParseDescriptor(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != fractal.Mandelbrot {
		t.Errorf("kind = %v, want Mandelbrot", d.Kind)
	}
	if d.Rect.X1 != -2-1.25 {
		t.Errorf("Rect.X1 = %v, want %v", d.Rect.X1, -2-1.25)
	}
}

func TestParseDescriptor_Julia(t *testing.T) {
	tokens := strings.Fields("JULIA -0.8 0.156 0 0 3.0 2.0 4 200")
	d, err := ParseDescriptor(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != fractal.Julia {
		t.Errorf("kind = %v, want Julia", d.Kind)
	}
	if d.C != complex(-0.8, 0.156) {
		t.Errorf("C = %v, want -0.8+0.156i", d.C)
	}
}

func TestParseDescriptor_RejectsUnknownKind(t *testing.T) {
	tokens := strings.Fields("NEWTON -2 -1.2 2.5 2.4 4 256")
	if _, err := ParseDescriptor(tokens); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestParseDescriptor_JuliaMissingConstant(t *testing.T) {
	tokens := strings.Fields("JULIA -2 -1.2 2.5 2.4 4")
	if _, err := ParseDescriptor(tokens); err == nil {
		t.Error("expected error for JULIA with too few tokens")
	}
}

func TestDefaultRenderConfig_HasAtLeastTwoStops(t *testing.T) {
	rc := DefaultRenderConfig()
	if len(rc.Stops) < 2 {
		t.Errorf("DefaultRenderConfig has %d stops, want >=2", len(rc.Stops))
	}
}
