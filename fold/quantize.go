package fold

import (
	"github.com/lixenwraith/creasefold/trait"
)

// Level is one of the ordered density classes a cell quantizes into.
type Level uint8

const (
	LevelBlank Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelBlank:
		return "blank"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	}
	return "unknown"
}

// Per-mode thresholds in per-mille of the observed maximum weight.
// blankBelow > 0 turns faint cells blank (sparse); low/medium are the
// upper bounds of their bands.
type bands struct {
	blankBelow int64
	low        int64
	medium     int64
}

var modeBands = map[trait.RenderMode]bands{
	trait.ModeNormal:   {blankBelow: 0, low: 330, medium: 660},
	trait.ModeInverted: {blankBelow: 0, low: 330, medium: 660}, // glyph mapping flips at render
	trait.ModeSparse:   {blankBelow: 250, low: 500, medium: 750},
	trait.ModeDense:    {blankBelow: 0, low: 150, medium: 400},
}

// Quantize maps accumulated weight to a density level per cell. Pure and
// order-independent: each cell depends only on its own weight, the render
// mode, and the grid-wide maximum. An all-zero grid quantizes to all
// blank regardless of mode.
func Quantize(g *Grid, mode trait.RenderMode) []Level {
	levels := make([]Level, len(g.Weights))
	max := g.MaxWeight()
	if max == 0 {
		return levels
	}

	if mode == trait.ModeBinary {
		for i, w := range g.Weights {
			if w > 0 {
				levels[i] = LevelHigh
			}
		}
		return levels
	}

	b := modeBands[mode]
	for i, w := range g.Weights {
		levels[i] = classifyWeight(w, max, b)
	}
	return levels
}

func classifyWeight(w, max int64, b bands) Level {
	if w == 0 {
		return LevelBlank
	}
	// Per-mille comparison without division: w/max < t/1000
	switch {
	case b.blankBelow > 0 && w*1000 < b.blankBelow*max:
		return LevelBlank
	case w*1000 <= b.low*max:
		return LevelLow
	case w*1000 <= b.medium*max:
		return LevelMedium
	default:
		return LevelHigh
	}
}
