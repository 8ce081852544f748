// Usage examples:
//
// # Trait distribution over 50000 random seeds
// ./trait-stats -n 50000
//
// The rare overlay frequencies should land near 0.8% each; the category
// distributions should match their threshold ladders.

package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/creasefold/prng"
	"github.com/lixenwraith/creasefold/trait"
)

func main() {
	var (
		count   int
		genSeed uint
	)

	flag.IntVar(&count, "n", 50000, "Number of random seeds to sample")
	flag.UintVar(&genSeed, "gen", 1, "Seed for the sample generator")
	flag.Parse()

	gen := prng.New(uint32(genSeed))

	strategies := map[string]int{}
	modes := map[string]int{}
	directions := map[string]int{}
	margins := map[string]int{}
	papers := map[string]int{}
	mono := 0
	creaseLines := 0
	hitCounts := 0
	foldTotal := 0

	for i := 0; i < count; i++ {
		var sb strings.Builder
		for j := 0; j < 8; j++ {
			fmt.Fprintf(&sb, "%08x", gen.Draw())
		}
		norm, err := prng.Normalize(sb.String())
		if err != nil {
			panic(err)
		}
		set := trait.Derive(norm, trait.DeriveCount)

		strategies[set.Strategy.String()]++
		modes[set.Mode.String()]++
		directions[set.Direction.String()]++
		margins[set.Margin.String()]++
		papers[set.Paper.Type.String()]++
		if set.Palette.Monochrome {
			mono++
		}
		if set.CreaseLines {
			creaseLines++
		}
		if set.HitCounts {
			hitCounts++
		}
		foldTotal += set.FoldCount
	}

	fmt.Printf("Sampled %d seeds\n\n", count)
	printDist("Strategy", strategies, count)
	printDist("Render mode", modes, count)
	printDist("Direction", directions, count)
	printDist("Margin", margins, count)
	printDist("Paper", papers, count)

	fmt.Printf("Monochrome:   %6.2f%% (target 4.00%%)\n", pct(mono, count))
	fmt.Printf("Crease lines: %6.2f%% (target 0.80%%)\n", pct(creaseLines, count))
	fmt.Printf("Hit counts:   %6.2f%% (target 0.80%%)\n", pct(hitCounts, count))
	fmt.Printf("Mean folds:   %6.2f (range %d-%d)\n",
		float64(foldTotal)/float64(count),
		trait.FoldCountMin, trait.FoldCountMin+trait.FoldCountSpread-1)
}

func printDist(label string, dist map[string]int, total int) {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return dist[keys[i]] > dist[keys[j]] })

	fmt.Printf("%s:\n", label)
	for _, k := range keys {
		fmt.Printf("  %-16s %6.2f%%\n", k, pct(dist[k], total))
	}
	fmt.Println()
}

func pct(n, total int) float64 {
	return 100 * float64(n) / float64(total)
}
