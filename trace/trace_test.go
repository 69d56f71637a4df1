package trace

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	t.Cleanup(func() { SetLevel(Normal) })

	SetLevel(Quiet)
	Normalf("should not appear")
	if buf.Len() != 0 {
		t.Errorf("Normalf at Quiet level wrote %q, want nothing", buf.String())
	}

	SetLevel(Normal)
	Normalf("hello %d", 42)
	if !strings.Contains(buf.String(), "hello 42") {
		t.Errorf("Normalf at Normal level = %q, want to contain %q", buf.String(), "hello 42")
	}

	buf.Reset()
	Verbosef("should not appear either")
	if buf.Len() != 0 {
		t.Errorf("Verbosef at Normal level wrote %q, want nothing", buf.String())
	}

	SetLevel(Verbose)
	Verbosef("detail")
	if !strings.Contains(buf.String(), "detail") {
		t.Error("Verbosef at Verbose level should write")
	}
}

func TestErrorfAlwaysWrites(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetLevel(Quiet)
	Errorf("fatal: %s", "boom")
	if !strings.Contains(buf.String(), "fatal: boom") {
		t.Error("Errorf should write even at Quiet level")
	}
}
