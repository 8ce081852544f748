package trait

import (
	"strings"
	"testing"

	"github.com/lixenwraith/creasefold/prng"
)

func TestDeriveDeterminism(t *testing.T) {
	a := Derive(1729966972, DeriveCount)
	b := Derive(1729966972, DeriveCount)
	if a != b {
		t.Errorf("Trait sets differ for identical input:\n%+v\n%+v", a, b)
	}
}

// Seed 0x7fffffff normalizes to 0; the trait streams then seed at the bare
// offsets. The palette first draw for this seed is pinned: any
// implementation must reproduce this exact branch.
func TestSeedMaxStateScenario(t *testing.T) {
	norm, err := prng.Normalize("0x7fffffff")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if norm != 0 {
		t.Fatalf("Normalize(0x7fffffff) = %d, want 0", norm)
	}

	// First palette draw, documented fixed point
	s := prng.NewStream(norm, OffsetPalette)
	d1 := s.Draw()
	if d1 != 1624259824 {
		t.Errorf("Palette first draw = %d, want 1624259824", d1)
	}
	if r := prng.Ratio(d1); r < 0.7563549208 || r > 0.7563549210 {
		t.Errorf("Palette first draw ratio = %.10f, want ~0.7563549209", r)
	}

	got := Derive(norm, DeriveCount)
	want := Set{
		FoldCount: 11,
		Strategy:  StrategyCluster,
		Mode:      ModeBinary,
		Palette:   Palette{Monochrome: false, Contrast: ContrastAnalogous, Colors: 2, BaseIndex: 9},
		Paper:     Paper{Type: PaperCrisp, Grain: false, GrainAngle: 73},
		Direction: DirCenterOut,
		Margin:    MarginWide,
		Weight:    weightRanges[0],
	}
	if got != want {
		t.Errorf("Derive mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestGoldenSeed(t *testing.T) {
	seed := "8a1c3f09d2e4b567" + strings.Repeat("ab", 24)
	norm, err := prng.Normalize(seed)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if norm != 1729966972 {
		t.Fatalf("Normalize = %d, want 1729966972", norm)
	}

	got := Derive(norm, DeriveCount)
	want := Set{
		FoldCount: 14,
		Strategy:  StrategyHorizontal,
		Mode:      ModeInverted,
		Palette:   Palette{Monochrome: false, Contrast: ContrastComplement, Colors: 2, BaseIndex: 3},
		Paper:     Paper{Type: PaperCrisp, Grain: true, GrainAngle: 40},
		Direction: DirSerpentine,
		Margin:    MarginSlim,
		Weight:    weightRanges[1],
	}
	if got != want {
		t.Errorf("Derive mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestExplicitFoldCountOnlyChangesCount(t *testing.T) {
	derived := Derive(1729966972, DeriveCount)
	explicit := Derive(1729966972, 9)

	if explicit.FoldCount != 9 {
		t.Errorf("Explicit fold count not honored: %d", explicit.FoldCount)
	}

	derived.FoldCount = 9
	if derived != explicit {
		t.Errorf("Explicit fold count changed unrelated traits:\n%+v\n%+v", derived, explicit)
	}
}

func TestClassifyTies(t *testing.T) {
	// State exactly at a boundary goes to the upper bucket (strict <)
	ladder := Ladder{50000, 100000}

	// bound cut: state*100000 < 50000*MaxState <=> state*2 < MaxState
	below := uint32(prng.MaxState / 2) // 2*below = MaxState-1 < MaxState
	at := below + 1                    // 2*at = MaxState+1 >= MaxState

	if got := ladder.Classify(below); got != 0 {
		t.Errorf("Classify(below) = %d, want 0", got)
	}
	if got := ladder.Classify(at); got != 1 {
		t.Errorf("Classify(at boundary) = %d, want 1", got)
	}
}

func TestDerivedFoldCountBounds(t *testing.T) {
	for n := uint32(1); n <= 2000; n++ {
		fc := Derive(n, DeriveCount).FoldCount
		if fc < FoldCountMin || fc >= FoldCountMin+FoldCountSpread {
			t.Fatalf("Derived fold count %d out of [%d,%d) for seed %d",
				fc, FoldCountMin, FoldCountMin+FoldCountSpread, n)
		}
	}
}

func TestRareTraitFrequency(t *testing.T) {
	// Rare overlays target 0.8%; over 10000 sequential normalized seeds the
	// observed rates are fixed by the constants (84 and 83 hits).
	const n = 10000
	crease, hits := 0, 0
	for i := uint32(1); i <= n; i++ {
		set := Derive(i, DeriveCount)
		if set.CreaseLines {
			crease++
		}
		if set.HitCounts {
			hits++
		}
	}

	// 0.8% +- 0.4% tolerance
	for name, count := range map[string]int{"crease-lines": crease, "hit-counts": hits} {
		rate := float64(count) / n
		if rate < 0.004 || rate > 0.012 {
			t.Errorf("%s rate = %.4f (%d/%d), want ~0.008", name, rate, count, n)
		}
	}
}

func TestCategoryCoverage(t *testing.T) {
	// Every bucket of every ladder must be reachable
	strategies := make(map[FoldStrategy]int)
	modes := make(map[RenderMode]int)
	directions := make(map[DrawDirection]int)

	for i := uint32(1); i <= 5000; i++ {
		set := Derive(i, DeriveCount)
		strategies[set.Strategy]++
		modes[set.Mode]++
		directions[set.Direction]++
	}

	if len(strategies) != 7 {
		t.Errorf("Expected all 7 strategies over 5000 seeds, got %d: %v", len(strategies), strategies)
	}
	if len(modes) != 5 {
		t.Errorf("Expected all 5 render modes, got %d: %v", len(modes), modes)
	}
	if len(directions) != 7 {
		t.Errorf("Expected all 7 draw directions, got %d: %v", len(directions), directions)
	}
}
