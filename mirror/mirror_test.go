package mirror

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lixenwraith/creasefold/prng"
	"github.com/lixenwraith/creasefold/trait"
)

// Cross-implementation parity is the central property: the contract-shaped
// derivation must match the engine bit-for-bit over many random seeds.
func TestParityOverRandomSeeds(t *testing.T) {
	// Deterministic 256-bit seed generator for the sample
	gen := prng.New(987654321)

	for i := 0; i < 5000; i++ {
		var sb strings.Builder
		sb.WriteString("0x")
		for j := 0; j < 8; j++ {
			fmt.Fprintf(&sb, "%08x", gen.Draw())
		}
		seed := sb.String()

		norm, err := prng.Normalize(seed)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", seed, err)
		}
		engine := trait.Derive(norm, trait.DeriveCount)

		onchain, err := Derive(seed, -1)
		if err != nil {
			t.Fatalf("mirror.Derive(%q): %v", seed, err)
		}

		if engine != onchain {
			t.Fatalf("Parity break for seed %s:\nengine  %+v\nmirror  %+v", seed, engine, onchain)
		}
	}
}

func TestParityWithExplicitFoldCount(t *testing.T) {
	seed := "8a1c3f09d2e4b567" + strings.Repeat("ab", 24)

	norm, err := prng.Normalize(seed)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	for _, fc := range []int{0, 1, 9, 64} {
		engine := trait.Derive(norm, fc)
		onchain, err := Derive(seed, fc)
		if err != nil {
			t.Fatalf("Derive(fc=%d): %v", fc, err)
		}
		if engine != onchain {
			t.Errorf("Parity break at fold count %d", fc)
		}
	}
}

func TestParityAtSeedEdges(t *testing.T) {
	edges := []string{
		"0x7fffffff",
		"0x0000000000000001",
		"0x8000000000000000",
		"0xffffffffffffffff",
		strings.Repeat("f", 64),
		strings.Repeat("0", 63) + "1",
	}

	for _, seed := range edges {
		t.Run(seed[:10], func(t *testing.T) {
			norm, err := prng.Normalize(seed)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			engine := trait.Derive(norm, trait.DeriveCount)
			onchain, err := Derive(seed, -1)
			if err != nil {
				t.Fatalf("mirror.Derive: %v", err)
			}
			if engine != onchain {
				t.Errorf("Parity break:\nengine %+v\nmirror %+v", engine, onchain)
			}
		})
	}
}

func TestMirrorRejectsMalformedSeeds(t *testing.T) {
	for _, seed := range []string{"", "0x", "xyz", strings.Repeat("a", 65)} {
		if _, err := Derive(seed, -1); !errors.Is(err, prng.ErrSeedFormat) {
			t.Errorf("Derive(%q) = %v, want ErrSeedFormat", seed, err)
		}
	}
}
