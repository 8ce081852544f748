package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/creasefold/prng"
)

const goldenSeed = "8a1c3f09d2e4b5678a1c3f09d2e4b5678a1c3f09d2e4b5678a1c3f09d2e4b567"

func intp(v int) *int { return &v }

func validParams() Params {
	return Params{Seed: goldenSeed, Width: 512, Height: 512, Padding: 16}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr error
	}{
		{"Valid", func(p *Params) {}, nil},
		{"BadSeed", func(p *Params) { p.Seed = "xyz" }, prng.ErrSeedFormat},
		{"EmptySeed", func(p *Params) { p.Seed = "" }, prng.ErrSeedFormat},
		{"TooNarrow", func(p *Params) { p.Width = 100 }, ErrDimensions},
		{"TooTall", func(p *Params) { p.Height = 5000 }, ErrDimensions},
		{"NegativePadding", func(p *Params) { p.Padding = -1 }, ErrDimensions},
		{"ExcessPadding", func(p *Params) { p.Padding = 200 }, ErrDimensions},
		{"NegativeFolds", func(p *Params) { p.FoldCount = intp(-1) }, ErrFoldCount},
		{"ExcessFolds", func(p *Params) { p.FoldCount = intp(65) }, ErrFoldCount},
		{"ZeroFolds", func(p *Params) { p.FoldCount = intp(0) }, nil},
		{"MaxFolds", func(p *Params) { p.FoldCount = intp(64) }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateDeterminism(t *testing.T) {
	p := validParams()
	a, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _ := Generate(p)

	if a.Traits != b.Traits {
		t.Fatalf("Traits differ between identical generations")
	}
	for i := range a.Levels {
		if a.Levels[i] != b.Levels[i] {
			t.Fatalf("Levels diverged at cell %d", i)
		}
	}
	for i := range a.Ops {
		if a.Ops[i] != b.Ops[i] {
			t.Fatalf("Ops diverged at %d", i)
		}
	}
}

func TestDimensionsNeverChangeTraits(t *testing.T) {
	base, err := Derive(goldenSeed, nil)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	dims := []Params{
		{Seed: goldenSeed, Width: 160, Height: 160, Padding: 0},
		{Seed: goldenSeed, Width: 512, Height: 512, Padding: 16},
		{Seed: goldenSeed, Width: 4096, Height: 1024, Padding: 64},
		{Seed: goldenSeed, Width: 1024, Height: 4096, Padding: 0},
	}

	for _, p := range dims {
		art, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate(%dx%d): %v", p.Width, p.Height, err)
		}
		if art.Traits != base {
			t.Errorf("Traits changed with dimensions %dx%d pad %d", p.Width, p.Height, p.Padding)
		}
	}
}

func TestZeroFoldCountRendersBlank(t *testing.T) {
	seeds := []string{
		goldenSeed,
		"0x7fffffff",
		strings.Repeat("f", 64),
		"0x1234567890abcdef",
	}

	for _, seed := range seeds {
		p := Params{Seed: seed, FoldCount: intp(0), Width: 256, Height: 256}
		art, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate(%s): %v", seed, err)
		}
		if art.Pattern.Grid.MaxWeight() != 0 {
			t.Errorf("Seed %s: fold count 0 left weight on the grid", seed)
		}
		for _, lv := range art.Levels {
			if lv != 0 {
				t.Fatalf("Seed %s: fold count 0 produced non-blank level", seed)
			}
		}
	}
}

func TestExplicitFoldCountHonored(t *testing.T) {
	p := validParams()
	p.FoldCount = intp(3)
	art, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if art.Traits.FoldCount != 3 {
		t.Errorf("FoldCount = %d, want 3", art.Traits.FoldCount)
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	art, err := EncodePNG(&buf, validParams())
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("No PNG bytes written")
	}
	if len(art.Ops) != art.Pattern.Grid.Cols*art.Pattern.Grid.Rows {
		t.Errorf("Op count %d does not cover the %dx%d grid",
			len(art.Ops), art.Pattern.Grid.Cols, art.Pattern.Grid.Rows)
	}
}

func TestGenerateGridFitsAllMargins(t *testing.T) {
	// The minimum canvas must yield a non-empty grid for every margin
	// class a seed can select; scan enough seeds to hit all three.
	margins := make(map[string]bool)
	gen := prng.New(1)
	for i := 0; i < 200; i++ {
		seed := hex8(gen.Draw()) + strings.Repeat("0", 56)
		p := Params{Seed: seed, Width: MinCanvas, Height: MinCanvas, Padding: MinCanvas / 8}
		art, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate(%s): %v", seed, err)
		}
		g := art.Pattern.Grid
		if g.Cols < 1 || g.Rows < 1 {
			t.Fatalf("Empty grid for seed %s margin %v", seed, art.Traits.Margin)
		}
		margins[art.Traits.Margin.String()] = true
	}
	if len(margins) != 3 {
		t.Errorf("Expected to exercise all margin classes, got %v", margins)
	}
}

func hex8(v uint32) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		out[i] = digits[v&0xF]
		v >>= 4
	}
	return string(out)
}
