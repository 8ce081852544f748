// Usage examples:
//
// # Render a seed to PNG
// ./creasefold -seed 0x8a1c3f09d2e4b567 -o out.png
//
// # Fixed fold count, larger canvas
// ./creasefold -seed 0xdeadbeef -folds 24 -w 1024 -h 1024 -o out.png
//
// # Trait dump only, no render
// ./creasefold -seed 0xdeadbeef -traits

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/creasefold/engine"
	"github.com/lixenwraith/creasefold/trait"
)

func main() {
	var (
		seed       string
		folds      int
		width      int
		height     int
		padding    int
		output     string
		traitsOnly bool
	)

	flag.StringVar(&seed, "seed", "", "Hex seed, 1-64 digits, optional 0x prefix (required)")
	flag.IntVar(&folds, "folds", -1, "Explicit fold count 0-64 (-1 = derive from seed)")
	flag.IntVar(&width, "w", 512, "Canvas width in pixels")
	flag.IntVar(&height, "h", 512, "Canvas height in pixels")
	flag.IntVar(&padding, "pad", 0, "Caller padding in pixels")
	flag.StringVar(&output, "o", "-", "Output PNG file ('-' for stdout)")
	flag.BoolVar(&traitsOnly, "traits", false, "Print traits and exit without rendering")
	flag.Parse()

	if seed == "" {
		fmt.Fprintln(os.Stderr, "Usage: creasefold -seed <hex> [options]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var fc *int
	if folds >= 0 {
		fc = &folds
	}

	if traitsOnly {
		set, err := engine.Derive(seed, fc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error deriving traits: %v\n", err)
			os.Exit(1)
		}
		printTraits(os.Stdout, set)
		return
	}

	params := engine.Params{
		Seed:      seed,
		FoldCount: fc,
		Width:     width,
		Height:    height,
		Padding:   padding,
	}

	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	art, err := engine.EncodePNG(out, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Seed normalized: %d\n", art.Normalized)
	fmt.Fprintf(os.Stderr, "Grid: %dx%d cells\n", art.Pattern.Grid.Cols, art.Pattern.Grid.Rows)
	printTraits(os.Stderr, art.Traits)
}

func printTraits(w *os.File, set trait.Set) {
	fmt.Fprintf(w, "Fold count:  %d\n", set.FoldCount)
	fmt.Fprintf(w, "Strategy:    %s\n", set.Strategy)
	fmt.Fprintf(w, "Render mode: %s\n", set.Mode)
	if set.Palette.Monochrome {
		fmt.Fprintf(w, "Palette:     monochrome\n")
	} else {
		fmt.Fprintf(w, "Palette:     %d colors, %s, base %d\n",
			set.Palette.Colors, set.Palette.Contrast, set.Palette.BaseIndex)
	}
	if set.Paper.Grain {
		fmt.Fprintf(w, "Paper:       %s, grain at %d deg\n", set.Paper.Type, set.Paper.GrainAngle)
	} else {
		fmt.Fprintf(w, "Paper:       %s\n", set.Paper.Type)
	}
	fmt.Fprintf(w, "Direction:   %s\n", set.Direction)
	fmt.Fprintf(w, "Margin:      %s (%d px)\n", set.Margin, set.Margin.Pixels())
	fmt.Fprintf(w, "Weight:      %.2f-%.2f\n",
		float64(set.Weight.Lo)/(1<<32), float64(set.Weight.Hi)/(1<<32))
	if set.CreaseLines {
		fmt.Fprintln(w, "Rare:        crease lines")
	}
	if set.HitCounts {
		fmt.Fprintln(w, "Rare:        hit counts")
	}
}
