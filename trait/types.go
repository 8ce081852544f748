package trait

import (
	"github.com/lixenwraith/creasefold/fmath"
)

// FoldStrategy selects how crease orientations evolve across cycles.
type FoldStrategy int

const (
	StrategyHorizontal FoldStrategy = iota
	StrategyVertical
	StrategyGrid
	StrategyDiagonal
	StrategyRadial
	StrategyCluster
	StrategyRandom
)

func (s FoldStrategy) String() string {
	switch s {
	case StrategyHorizontal:
		return "horizontal"
	case StrategyVertical:
		return "vertical"
	case StrategyGrid:
		return "grid"
	case StrategyDiagonal:
		return "diagonal"
	case StrategyRadial:
		return "radial"
	case StrategyCluster:
		return "cluster"
	case StrategyRandom:
		return "random"
	}
	return "unknown"
}

// RenderMode selects the weight-to-density quantization scheme.
type RenderMode int

const (
	ModeNormal RenderMode = iota
	ModeBinary
	ModeInverted
	ModeSparse
	ModeDense
)

func (m RenderMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeBinary:
		return "binary"
	case ModeInverted:
		return "inverted"
	case ModeSparse:
		return "sparse"
	case ModeDense:
		return "dense"
	}
	return "unknown"
}

// ContrastStrategy names how palette colors relate to the base color.
type ContrastStrategy int

const (
	ContrastComplement ContrastStrategy = iota
	ContrastAnalogous
	ContrastTriadic
	ContrastClash
)

func (c ContrastStrategy) String() string {
	switch c {
	case ContrastComplement:
		return "complement"
	case ContrastAnalogous:
		return "analogous"
	case ContrastTriadic:
		return "triadic"
	case ContrastClash:
		return "clash"
	}
	return "unknown"
}

// PaperType is the absorbency band the simulated paper falls into.
type PaperType int

const (
	PaperCrisp PaperType = iota
	PaperStandard
	PaperBlotting
)

func (p PaperType) String() string {
	switch p {
	case PaperCrisp:
		return "crisp"
	case PaperStandard:
		return "standard"
	case PaperBlotting:
		return "blotting"
	}
	return "unknown"
}

// DrawDirection is the cell traversal order used when emitting.
type DrawDirection int

const (
	DirLeftToRight DrawDirection = iota
	DirRightToLeft
	DirCenterOut
	DirSerpentine
	DirDiagonalSweep
	DirMidpointOut
	DirCheckerboard
)

func (d DrawDirection) String() string {
	switch d {
	case DirLeftToRight:
		return "left-to-right"
	case DirRightToLeft:
		return "right-to-left"
	case DirCenterOut:
		return "center-out"
	case DirSerpentine:
		return "serpentine"
	case DirDiagonalSweep:
		return "diagonal-sweep"
	case DirMidpointOut:
		return "midpoint-out"
	case DirCheckerboard:
		return "checkerboard"
	}
	return "unknown"
}

// MarginClass is the size class of the blank border around the grid.
type MarginClass int

const (
	MarginSlim MarginClass = iota
	MarginRegular
	MarginWide
)

func (m MarginClass) String() string {
	switch m {
	case MarginSlim:
		return "slim"
	case MarginRegular:
		return "regular"
	case MarginWide:
		return "wide"
	}
	return "unknown"
}

// Pixels returns the extra border the margin class adds to caller padding.
func (m MarginClass) Pixels() int {
	switch m {
	case MarginSlim:
		return 8
	case MarginRegular:
		return 20
	case MarginWide:
		return 36
	}
	return 20
}

// WeightRange is the skewed sub-range the per-crease base weight is drawn
// from, in Q32.32.
type WeightRange struct {
	Lo int64
	Hi int64
}

// Base is the per-crease contribution before cycle reduction: the range
// midpoint.
func (w WeightRange) Base() int64 {
	return (w.Lo + w.Hi) / 2
}

// WeightRangeFor returns the weight sub-range for a WeightLadder bucket.
func WeightRangeFor(bucket int) WeightRange {
	return weightRanges[bucket]
}

// weightRanges indexed by WeightLadder bucket.
var weightRanges = []WeightRange{
	{Lo: fmath.FromFloat(0.60), Hi: fmath.FromFloat(1.00)},
	{Lo: fmath.FromFloat(1.00), Hi: fmath.FromFloat(1.80)},
	{Lo: fmath.FromFloat(1.80), Hi: fmath.FromFloat(2.60)},
	{Lo: fmath.FromFloat(2.60), Hi: fmath.FromFloat(4.00)},
}

// Palette describes the color selection: strategy name, color count,
// monochrome flag, and the base index into the CGA table.
type Palette struct {
	Monochrome bool
	Contrast   ContrastStrategy
	Colors     int
	BaseIndex  int
}

// Paper describes the simulated paper stock.
type Paper struct {
	Type       PaperType
	Grain      bool
	GrainAngle int // degrees, meaningful only when Grain is set
}

// Set is the immutable trait record for one artwork. Computed once per
// (seed, optional explicit fold count); never mutated afterward.
type Set struct {
	FoldCount int
	Strategy  FoldStrategy
	Mode      RenderMode
	Palette   Palette
	Paper     Paper
	Direction DrawDirection
	Margin    MarginClass
	Weight    WeightRange

	// Rare overlays, ~0.8% each, independent of all other traits.
	CreaseLines bool
	HitCounts   bool
}
