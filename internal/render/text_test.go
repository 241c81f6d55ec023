package render

import (
	"testing"

	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/font"
	"github.com/vovakirdan/chad-snake/internal/render/rendertest"
)

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text     string
		scale    float64
		expected float64
	}{
		{"", 0.02, 0},
		{"A", 0.02, 0.1},
		{"AB", 0.02, 0.22},
		{"SCORE: 10", 0.02, 9*0.12 - 0.02},
	}

	for _, tc := range tests {
		if got := TextWidth(tc.text, tc.scale); !near(got, tc.expected) {
			t.Errorf("TextWidth(%q, %f) = %f, expected %f", tc.text, tc.scale, got, tc.expected)
		}
	}
}

func TestDrawCharCount(t *testing.T) {
	rec := &rendertest.Recorder{}
	white := core.RGB(1, 1, 1)

	for _, r := range font.Runes() {
		rec.Reset()
		DrawChar(rec, r, 0, 0, 0.01, white)
		if rec.Len() != font.Lookup(r).Count() {
			t.Errorf("DrawChar(%q) issued %d quads, expected %d", r, rec.Len(), font.Lookup(r).Count())
		}
	}

	rec.Reset()
	DrawChar(rec, ' ', 0, 0, 0.01, white)
	if rec.Len() != 0 {
		t.Errorf("space should draw nothing, got %d quads", rec.Len())
	}

	rec.Reset()
	DrawChar(rec, '?', 0, 0, 0.01, white)
	if rec.Len() != 0 {
		t.Errorf("unmapped rune should draw as space, got %d quads", rec.Len())
	}
}

func TestDrawCharPlacement(t *testing.T) {
	rec := &rendertest.Recorder{}
	scale := 0.1

	// '.' has a single pixel at row 4, col 2
	DrawChar(rec, '.', 0, 0, scale, core.RGB(1, 1, 1))
	if rec.Len() != 1 {
		t.Fatalf("expected 1 quad, got %d", rec.Len())
	}
	q := rec.Quads[0]
	// x + col*scale - 5*scale/2, y - row*scale + 5*scale/2
	if !near(q.X, 2*scale-2.5*scale) || !near(q.Y, -4*scale+2.5*scale) {
		t.Errorf("pixel at (%f, %f), expected (%f, %f)", q.X, q.Y, -0.5*scale, -1.5*scale)
	}
	if !near(q.SX, scale) || !near(q.SY, scale) {
		t.Errorf("pixel scale (%f, %f), expected (%f, %f)", q.SX, q.SY, scale, scale)
	}
}

func TestDrawTextLayout(t *testing.T) {
	rec := &rendertest.Recorder{}
	scale := 0.1
	white := core.RGB(1, 1, 1)

	// Two periods: one pixel each, at col 2 of their cells
	DrawText(rec, "..", 0, 0, scale, white)
	if rec.Len() != 2 {
		t.Fatalf("expected 2 quads, got %d", rec.Len())
	}

	start := -TextWidth("..", scale) / 2
	first := start + 2*scale - 2.5*scale
	second := first + 6*scale
	if !near(rec.Quads[0].X, first) {
		t.Errorf("first pixel x = %f, expected %f", rec.Quads[0].X, first)
	}
	if !near(rec.Quads[1].X, second) {
		t.Errorf("second pixel x = %f, expected %f", rec.Quads[1].X, second)
	}
}

func TestDrawTextCount(t *testing.T) {
	rec := &rendertest.Recorder{}
	text := "Game Over"

	DrawText(rec, text, 0, 0, 0.02, core.RGB(1, 0, 0))

	want := 0
	for _, r := range text {
		want += font.Lookup(r).Count()
	}
	if rec.Len() != want {
		t.Errorf("DrawText(%q) issued %d quads, expected %d", text, rec.Len(), want)
	}
}
