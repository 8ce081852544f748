package render

import (
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/creasefold/fold"
	"github.com/lixenwraith/creasefold/trait"
)

// CGA is the constrained 16-color vocabulary. Indices follow the classic
// palette layout; every emitted foreground comes from this table.
var CGA = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF}, // 0 black
	{0x00, 0x00, 0xAA, 0xFF}, // 1 blue
	{0x00, 0xAA, 0x00, 0xFF}, // 2 green
	{0x00, 0xAA, 0xAA, 0xFF}, // 3 cyan
	{0xAA, 0x00, 0x00, 0xFF}, // 4 red
	{0xAA, 0x00, 0xAA, 0xFF}, // 5 magenta
	{0xAA, 0x55, 0x00, 0xFF}, // 6 brown
	{0xAA, 0xAA, 0xAA, 0xFF}, // 7 light gray
	{0x55, 0x55, 0x55, 0xFF}, // 8 dark gray
	{0x55, 0x55, 0xFF, 0xFF}, // 9 light blue
	{0x55, 0xFF, 0x55, 0xFF}, // 10 light green
	{0x55, 0xFF, 0xFF, 0xFF}, // 11 light cyan
	{0xFF, 0x55, 0x55, 0xFF}, // 12 light red
	{0xFF, 0x55, 0xFF, 0xFF}, // 13 light magenta
	{0xFF, 0xFF, 0x55, 0xFF}, // 14 yellow
	{0xFF, 0xFF, 0xFF, 0xFF}, // 15 white
}

// grayIndices are excluded from hue scoring: hue is meaningless there.
var grayIndices = map[int]bool{0: true, 7: true, 8: true, 15: true}

// Colors holds the resolved per-level colors for one artwork. Index 0 is
// the base (high density); later entries cover medium and low.
type Colors struct {
	Levels [3]color.RGBA // high, medium, low
	Bg     color.RGBA
	Accent color.RGBA // crease/hit overlays
}

// BuildColors resolves the palette trait against the CGA table. The
// contrast strategies are scored in go-colorful's Hcl space; this is
// display-level selection, outside the trait parity contract.
func BuildColors(p trait.Palette) Colors {
	if p.Monochrome {
		return Colors{
			Levels: [3]color.RGBA{CGA[15], CGA[7], CGA[8]},
			Bg:     CGA[0],
			Accent: CGA[7],
		}
	}

	base := p.BaseIndex % len(CGA)
	if base == 0 {
		// Black foreground on black background is unreadable; the classic
		// fallback is white.
		base = 15
	}

	picks := []int{base}
	for _, idx := range rankByContrast(base, p.Contrast) {
		if len(picks) >= p.Colors {
			break
		}
		picks = append(picks, idx)
	}

	c := Colors{Bg: CGA[0], Accent: CGA[15]}
	for i := 0; i < 3; i++ {
		// With 2 colors, medium and low share the secondary
		j := i
		if j >= len(picks) {
			j = len(picks) - 1
		}
		c.Levels[i] = CGA[picks[j]]
	}
	if picks[len(picks)-1] == 15 {
		c.Accent = CGA[7]
	}
	return c
}

// rankByContrast orders the non-gray CGA entries by how well they fit the
// contrast strategy relative to the base color. Deterministic: score
// ties break on table index.
func rankByContrast(base int, strategy trait.ContrastStrategy) []int {
	bh, bc, _ := toHcl(base)

	type scored struct {
		idx   int
		score float64
	}
	var candidates []scored

	for i := range CGA {
		if i == base || grayIndices[i] {
			continue
		}
		h, c, _ := toHcl(i)
		hd := hueDistance(bh, h)

		var score float64
		switch strategy {
		case trait.ContrastComplement:
			// Closest to opposite hue
			score = -absf(180 - hd)
		case trait.ContrastAnalogous:
			// Nearest neighboring hue
			score = -hd
		case trait.ContrastTriadic:
			// Closest to a 120-degree spoke
			score = -absf(120 - hd)
		case trait.ContrastClash:
			// Far in both hue and chroma
			score = hd + absf(c-bc)*100
		}

		candidates = append(candidates, scored{idx: i, score: score})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].idx < candidates[b].idx
	})

	out := make([]int, len(candidates))
	for i, s := range candidates {
		out[i] = s.idx
	}
	return out
}

func toHcl(idx int) (h, c, l float64) {
	rgba := CGA[idx]
	cf := colorful.Color{
		R: float64(rgba.R) / 255,
		G: float64(rgba.G) / 255,
		B: float64(rgba.B) / 255,
	}
	return cf.Hcl()
}

func hueDistance(a, b float64) float64 {
	d := absf(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// ColorFor returns the foreground for a density level. Blank cells carry
// the background.
func (c Colors) ColorFor(level fold.Level) color.RGBA {
	switch level {
	case fold.LevelHigh:
		return c.Levels[0]
	case fold.LevelMedium:
		return c.Levels[1]
	case fold.LevelLow:
		return c.Levels[2]
	}
	return c.Bg
}
