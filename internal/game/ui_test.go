package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestGlyphCoverage(t *testing.T) {
	for _, s := range []string{"0123456789", "GAME OVER", "press enter to retry", "SCORE: +8 X16 !?./-"} {
		for _, ch := range s {
			if _, ok := Glyph(ch); !ok {
				t.Errorf("no glyph for %q", ch)
			}
		}
	}
	if _, ok := Glyph('~'); ok {
		t.Errorf("unexpected glyph for '~'")
	}
}

func TestGlyphPixels(t *testing.T) {
	one, _ := Glyph('1')
	// Top row of '1' is the middle column only.
	if glyphPixel(one, 0, 0) || !glyphPixel(one, 1, 0) || glyphPixel(one, 2, 0) {
		t.Fatalf("unexpected top row for '1': %03b", one[0])
	}
	// Bottom row is a full bar.
	for x := 0; x < GlyphW; x++ {
		if !glyphPixel(one, x, GlyphH-1) {
			t.Fatalf("bottom row of '1' should be full")
		}
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text  string
		scale float32
		want  int
	}{
		{"", 1, 0},
		{"A", 1, GlyphW},
		{"AB", 1, GlyphAdvance + GlyphW},
		{"AB", 3, 3 * (GlyphAdvance + GlyphW)},
		{"ABC\nA", 2, 2 * (2*GlyphAdvance + GlyphW)},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text, tt.scale); got != tt.want {
			t.Errorf("TextWidth(%q, %v) = %d, want %d", tt.text, tt.scale, got, tt.want)
		}
	}
}

func TestPopupsExpire(t *testing.T) {
	var h HUD
	h.AddPopup(4, true, mgl64.Vec3{})
	h.AddPopup(1, false, mgl64.Vec3{1, 0, 0})
	if len(h.Popups) != 2 || h.Popups[0].Text != "+4" || h.Popups[0].Col != Palette.Gold {
		t.Fatalf("unexpected popups: %+v", h.Popups)
	}
	if h.Popups[1].Col != Palette.Text {
		t.Fatalf("imprecise landing popup should use the text colour")
	}

	h.Update(PopupLife / 2)
	if len(h.Popups) != 2 {
		t.Fatalf("popups expired early")
	}
	h.Update(PopupLife / 2)
	if len(h.Popups) != 0 {
		t.Fatalf("popups should expire after their life, got %d", len(h.Popups))
	}
}

func TestRecordScoreKeepsBest(t *testing.T) {
	var h HUD
	for _, s := range []int{3, 12, 5} {
		h.RecordScore(s)
	}
	if h.Best != 12 {
		t.Fatalf("best: got %d want 12", h.Best)
	}
}
