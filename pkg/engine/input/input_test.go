package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"darkgrid/pkg/engine/world"
)

func TestReadLine_TrimsLineEndings(t *testing.T) {
	r := NewReader(strings.NewReader("hello\r\nworld\nlast"), io.Discard)
	for _, want := range []string{"hello", "world", "last"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}
	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() at end = %v, want io.EOF", err)
	}
}

func TestPrompt_WritesMessage(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("Ada\n"), &out)
	got, err := r.Prompt("Name: ")
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if got != "Ada" || out.String() != "Name: " {
		t.Errorf("Prompt() = %q with output %q", got, out.String())
	}
}

func TestSetRaw_NotATerminal(t *testing.T) {
	r := NewReader(strings.NewReader("l\n"), io.Discard)
	if r.SetRaw(true) {
		t.Error("SetRaw(true) on a string reader = true, want false")
	}
	got, err := r.ReadKey()
	if err != nil || got != "l" {
		t.Errorf("ReadKey() = (%q, %v), want (\"l\", nil)", got, err)
	}
}

func TestTryReadArrowKey(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"[A", "arrow_up"},
		{"[B", "arrow_down"},
		{"[C", "arrow_right"},
		{"OD", "arrow_left"},
		{"[Z", ""},
		{"x", ""},
	}
	for _, tt := range tests {
		r := NewReader(strings.NewReader(tt.seq), io.Discard)
		if got := r.tryReadArrowKey(0x1b); got != tt.want {
			t.Errorf("tryReadArrowKey(ESC %q) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestTryReadArrowKey_LoneEscapeKeepsNextKey(t *testing.T) {
	r := NewReader(strings.NewReader("l\n"), io.Discard)
	if got := r.tryReadArrowKey(0x1b); got != "" {
		t.Fatalf("tryReadArrowKey(ESC \"l\") = %q, want \"\"", got)
	}
	line, err := r.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if line != "l" {
		t.Errorf("key after lone ESC = %q, want \"l\"", line)
	}
}

func TestMapToDirection(t *testing.T) {
	tests := []struct {
		code   string
		want   world.Direction
		wantOK bool
	}{
		{"l", world.Left, true},
		{"U", world.Up, true},
		{" r ", world.Right, true},
		{"arrow_down", world.Down, true},
		{"x", 0, false},
		{"", 0, false},
		{"lu", 0, false},
	}
	for _, tt := range tests {
		got, ok := MapToDirection(tt.code)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("MapToDirection(%q) = (%v, %v), want (%v, %v)", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}
