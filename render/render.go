// Package render turns a quantized fold pattern into draw operations and
// rasterizes them: PNG bytes for the minting pipeline, or tcell cells for
// the interactive viewer. The renderer never mutates trait or grid state;
// its only side effects are writes to the surface it is handed.
package render

import (
	"errors"
	"image/color"

	"github.com/lixenwraith/creasefold/fold"
	"github.com/lixenwraith/creasefold/trait"
)

// ErrSurfaceUnavailable distinguishes rendering failures from derivation
// errors: the artwork could be computed, the target could not be drawn on.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// CellOp is one draw operation: a glyph and colors at a grid cell. Ops are
// emitted in walk order and carry the quantized level and hit count so
// surfaces can apply the overlays.
type CellOp struct {
	X, Y  int
	Glyph rune
	Fg    color.RGBA
	Bg    color.RGBA
	Level fold.Level
	Hits  int
}

// Emit walks the quantized grid in the direction the trait set dictates
// and produces one operation per cell. In inverted mode the glyph and
// color assignment flips end-for-end while the underlying levels stay
// untouched.
func Emit(p *fold.Pattern, levels []fold.Level, set trait.Set, normalized uint32) []CellOp {
	g := p.Grid
	colors := BuildColors(set.Palette)
	inverted := set.Mode == trait.ModeInverted

	order := WalkOrder(set.Direction, g.Cols, g.Rows, normalized)
	ops := make([]CellOp, 0, len(order))

	for _, i := range order {
		x, y := i%g.Cols, i/g.Cols
		level := levels[i]

		paint := level
		if inverted {
			paint = fold.LevelHigh - level
		}

		op := CellOp{
			X:     x,
			Y:     y,
			Glyph: levelGlyphs[paint],
			Fg:    colors.ColorFor(paint),
			Bg:    colors.Bg,
			Level: level,
		}
		if set.HitCounts {
			op.Hits = g.HitsAt(x, y)
		}
		ops = append(ops, op)
	}

	return ops
}
