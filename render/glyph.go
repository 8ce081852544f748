package render

import (
	"github.com/lixenwraith/creasefold/fold"
)

// The fixed glyph vocabulary: blank plus three density symbols. Inverted
// render mode reverses the assignment end-for-end.
const (
	GlyphBlank  = ' '
	GlyphLow    = '·'
	GlyphMedium = '+'
	GlyphHigh   = '#'
)

var levelGlyphs = [4]rune{GlyphBlank, GlyphLow, GlyphMedium, GlyphHigh}

// GlyphFor maps a density level to its glyph, honoring the inverted flip.
func GlyphFor(level fold.Level, inverted bool) rune {
	if inverted {
		return levelGlyphs[3-level]
	}
	return levelGlyphs[level]
}

// 8x8 bitmap per glyph for the raster surface, one byte per row, MSB left.
var glyphBitmaps = map[rune][8]uint8{
	GlyphLow: {
		0b00000000,
		0b00000000,
		0b00000000,
		0b00011000,
		0b00011000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	GlyphMedium: {
		0b00000000,
		0b00011000,
		0b00011000,
		0b01111110,
		0b01111110,
		0b00011000,
		0b00011000,
		0b00000000,
	},
	GlyphHigh: {
		0b01100110,
		0b11111111,
		0b01100110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b11111111,
		0b01100110,
	},
}
