package game

import "unicode"

// glyphs holds a 3x5 bitmap per supported rune. Each row is three bits,
// most significant bit on the left.
var glyphs = map[rune][GlyphH]uint8{
	'0': {7, 5, 5, 5, 7},
	'1': {2, 6, 2, 2, 7},
	'2': {7, 1, 7, 4, 7},
	'3': {7, 1, 7, 1, 7},
	'4': {5, 5, 7, 1, 1},
	'5': {7, 4, 7, 1, 7},
	'6': {7, 4, 7, 5, 7},
	'7': {7, 1, 1, 1, 1},
	'8': {7, 5, 7, 5, 7},
	'9': {7, 5, 7, 1, 7},
	'A': {2, 5, 7, 5, 5},
	'B': {6, 5, 6, 5, 6},
	'C': {3, 4, 4, 4, 3},
	'D': {6, 5, 5, 5, 6},
	'E': {7, 4, 6, 4, 7},
	'F': {7, 4, 6, 4, 4},
	'G': {3, 4, 5, 5, 3},
	'H': {5, 5, 7, 5, 5},
	'I': {7, 2, 2, 2, 7},
	'J': {1, 1, 1, 5, 2},
	'K': {5, 5, 6, 5, 5},
	'L': {4, 4, 4, 4, 7},
	'M': {5, 7, 7, 5, 5},
	'N': {6, 5, 5, 5, 5},
	'O': {2, 5, 5, 5, 2},
	'P': {6, 5, 6, 4, 4},
	'Q': {2, 5, 5, 6, 3},
	'R': {6, 5, 6, 5, 5},
	'S': {3, 4, 2, 1, 6},
	'T': {7, 2, 2, 2, 2},
	'U': {5, 5, 5, 5, 7},
	'V': {5, 5, 5, 5, 2},
	'W': {5, 5, 7, 7, 5},
	'X': {5, 5, 2, 5, 5},
	'Y': {5, 5, 2, 2, 2},
	'Z': {7, 1, 2, 4, 7},
	' ': {0, 0, 0, 0, 0},
	':': {0, 2, 0, 2, 0},
	'.': {0, 0, 0, 0, 2},
	'!': {2, 2, 2, 0, 2},
	'?': {7, 1, 2, 0, 2},
	'+': {0, 2, 7, 2, 0},
	'-': {0, 0, 7, 0, 0},
	'/': {1, 1, 2, 4, 4},
}

// Glyph returns the bitmap for ch. Letters are case-folded; unknown runes
// report false.
func Glyph(ch rune) ([GlyphH]uint8, bool) {
	g, ok := glyphs[unicode.ToUpper(ch)]
	return g, ok
}

// glyphPixel reports whether column x of row y is lit.
func glyphPixel(g [GlyphH]uint8, x, y int) bool {
	return g[y]&(1<<(GlyphW-1-x)) != 0
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	if maxLineLen == 0 {
		return 0
	}
	// No trailing gap after the last glyph.
	return int(float32(maxLineLen*GlyphAdvance-1) * scale)
}
