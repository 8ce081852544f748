package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/lixenwraith/creasefold/fmath"
	"github.com/lixenwraith/creasefold/fold"
	"github.com/lixenwraith/creasefold/trait"
)

func TestWalkOrdersArePermutations(t *testing.T) {
	const cols, rows = 7, 5

	directions := []trait.DrawDirection{
		trait.DirLeftToRight, trait.DirRightToLeft, trait.DirCenterOut,
		trait.DirSerpentine, trait.DirDiagonalSweep, trait.DirMidpointOut,
		trait.DirCheckerboard,
	}

	for _, d := range directions {
		t.Run(d.String(), func(t *testing.T) {
			order := WalkOrder(d, cols, rows, 13579)
			if len(order) != cols*rows {
				t.Fatalf("Order length %d, want %d", len(order), cols*rows)
			}
			seen := make([]bool, cols*rows)
			for _, i := range order {
				if i < 0 || i >= cols*rows {
					t.Fatalf("Index %d out of range", i)
				}
				if seen[i] {
					t.Fatalf("Index %d visited twice", i)
				}
				seen[i] = true
			}
		})
	}
}

func TestWalkOrderFixedShapes(t *testing.T) {
	if got := WalkOrder(trait.DirLeftToRight, 3, 2, 0); got[0] != 0 || got[5] != 5 {
		t.Errorf("Left-to-right order wrong: %v", got)
	}
	if got := WalkOrder(trait.DirRightToLeft, 3, 2, 0); got[0] != 5 || got[5] != 0 {
		t.Errorf("Right-to-left order wrong: %v", got)
	}

	// Serpentine: row 1 reversed
	got := WalkOrder(trait.DirSerpentine, 3, 2, 0)
	want := []int{0, 1, 2, 5, 4, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Serpentine order %v, want %v", got, want)
		}
	}

	// Checkerboard: even-parity cells first
	got = WalkOrder(trait.DirCheckerboard, 3, 2, 0)
	want = []int{0, 2, 4, 1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Checkerboard order %v, want %v", got, want)
		}
	}
}

func TestWalkOrderDeterminism(t *testing.T) {
	a := WalkOrder(trait.DirMidpointOut, 9, 6, 24680)
	b := WalkOrder(trait.DirMidpointOut, 9, 6, 24680)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Midpoint-out order not deterministic at %d", i)
		}
	}
}

func testPattern(t *testing.T, set trait.Set) (*fold.Pattern, []fold.Level) {
	t.Helper()
	p := fold.Simulate(set, 10, 8, 424242)
	return p, fold.Quantize(p.Grid, set.Mode)
}

func baseSet() trait.Set {
	return trait.Set{
		FoldCount: 7,
		Strategy:  trait.StrategyGrid,
		Mode:      trait.ModeNormal,
		Palette:   trait.Palette{Contrast: trait.ContrastComplement, Colors: 3, BaseIndex: 4},
		Direction: trait.DirLeftToRight,
		Weight:    trait.WeightRange{Lo: fmath.FromFloat(1.0), Hi: fmath.FromFloat(2.0)},
	}
}

func TestEmitOnePerCell(t *testing.T) {
	set := baseSet()
	p, levels := testPattern(t, set)

	ops := Emit(p, levels, set, 424242)
	if len(ops) != 10*8 {
		t.Fatalf("Expected %d ops, got %d", 10*8, len(ops))
	}
}

func TestEmitInvertedFlipsGlyphs(t *testing.T) {
	set := baseSet()
	p, levels := testPattern(t, set)
	normal := Emit(p, levels, set, 424242)

	set.Mode = trait.ModeInverted
	inverted := Emit(p, levels, set, 424242)

	for i := range normal {
		n, v := normal[i], inverted[i]
		if n.Level != v.Level {
			t.Fatalf("Levels must not change under inversion")
		}
		// blank <-> high, low <-> medium
		wantFlip := map[rune]rune{
			GlyphBlank: GlyphHigh, GlyphLow: GlyphMedium,
			GlyphMedium: GlyphLow, GlyphHigh: GlyphBlank,
		}
		if v.Glyph != wantFlip[n.Glyph] {
			t.Errorf("Cell %d: glyph %q inverted to %q", i, n.Glyph, v.Glyph)
		}
	}
}

func TestBuildColorsMonochrome(t *testing.T) {
	c := BuildColors(trait.Palette{Monochrome: true, Colors: 1})
	if c.Levels[0] != CGA[15] || c.Levels[1] != CGA[7] || c.Levels[2] != CGA[8] {
		t.Errorf("Monochrome must use the CGA gray ramp, got %v", c.Levels)
	}
}

func TestBuildColorsDeterministic(t *testing.T) {
	p := trait.Palette{Contrast: trait.ContrastTriadic, Colors: 3, BaseIndex: 2}
	a := BuildColors(p)
	b := BuildColors(p)
	if a != b {
		t.Errorf("Color selection not deterministic: %v vs %v", a, b)
	}
}

func TestBuildColorsBlackBaseFallback(t *testing.T) {
	c := BuildColors(trait.Palette{Contrast: trait.ContrastAnalogous, Colors: 2, BaseIndex: 0})
	if c.Levels[0] == CGA[0] {
		t.Errorf("Black base must fall back to a visible color")
	}
}

func TestContrastStrategiesDiffer(t *testing.T) {
	seen := make(map[[3]int]bool)
	for _, strat := range []trait.ContrastStrategy{
		trait.ContrastComplement, trait.ContrastAnalogous,
		trait.ContrastTriadic, trait.ContrastClash,
	} {
		c := BuildColors(trait.Palette{Contrast: strat, Colors: 3, BaseIndex: 4})
		key := [3]int{int(c.Levels[0].R), int(c.Levels[1].R) ^ int(c.Levels[1].G), int(c.Levels[2].B)}
		seen[key] = true
	}
	if len(seen) < 2 {
		t.Errorf("Contrast strategies collapsed to a single palette")
	}
}

func TestEncodePNG(t *testing.T) {
	set := baseSet()
	set.CreaseLines = true
	p, levels := testPattern(t, set)
	ops := Emit(p, levels, set, 424242)

	frame := NewFrame(320, 256, 8, trait.MarginRegular, p.Grid.Cols, p.Grid.Rows)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, ops, p, set, frame); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 256 {
		t.Errorf("Decoded size %v, want 320x256", img.Bounds())
	}
}

func TestEncodePNGNilWriter(t *testing.T) {
	set := baseSet()
	p, levels := testPattern(t, set)
	ops := Emit(p, levels, set, 424242)
	frame := NewFrame(320, 256, 8, trait.MarginRegular, p.Grid.Cols, p.Grid.Rows)

	if err := EncodePNG(nil, ops, p, set, frame); err != ErrSurfaceUnavailable {
		t.Errorf("Expected ErrSurfaceUnavailable, got %v", err)
	}
}

func TestPaintNilScreen(t *testing.T) {
	if err := Paint(nil, nil, 0, 0); err != ErrSurfaceUnavailable {
		t.Errorf("Expected ErrSurfaceUnavailable, got %v", err)
	}
}
