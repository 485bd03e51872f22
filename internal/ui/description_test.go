package ui

import (
	"slices"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	got := Wrap("the ant walks on\n\na grid", 9)
	want := []string{"the ant", "walks on", "", "a grid"}
	if !slices.Equal(got, want) {
		t.Fatalf("Wrap = %q, want %q", got, want)
	}

	got = Wrap("abcdefghij xy", 4)
	want = []string{"abcd", "efgh", "ij", "xy"}
	if !slices.Equal(got, want) {
		t.Fatalf("long word Wrap = %q, want %q", got, want)
	}
}

func TestDescriptionFitsPanel(t *testing.T) {
	text := Description()
	if !strings.HasPrefix(text, "Langton's Ant") {
		t.Fatalf("unexpected description start %q", text[:20])
	}
	for _, line := range Wrap(text, 38) {
		if len(line) > 38 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
}
