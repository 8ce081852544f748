package trait

import (
	"github.com/lixenwraith/creasefold/prng"
)

// Ladder is an ordered list of exclusive upper bounds in units of
// 1/prng.ThresholdScale. A drawn state classifies into the first bucket
// whose bound it falls below; ties go to the lower bucket. Both
// implementations consume these exact tables, so a ladder edit is a
// coordinated migration, not a tuning knob.
type Ladder []uint32

// Classify returns the bucket index for a drawn state.
func (l Ladder) Classify(state uint32) int {
	for i, upper := range l {
		if prng.Less(state, upper) {
			return i
		}
	}
	return len(l) - 1
}

// Cumulative bucket boundaries per categorical trait.
var (
	StrategyLadder = Ladder{18000, 36000, 54000, 70000, 82000, 93000, 100000}
	ModeLadder     = Ladder{40000, 55000, 70000, 85000, 100000}
	ContrastLadder = Ladder{30000, 55000, 80000, 100000}
	DirectionLadder = Ladder{22000, 40000, 55000, 70000, 82000, 92000, 100000}
	MarginLadder    = Ladder{30000, 80000, 100000}
	WeightLadder    = Ladder{40000, 75000, 92000, 100000}
)

// Scalar thresholds and ranges.
const (
	// MonochromeBound: palette first draw below 0.04 selects monochrome.
	MonochromeBound = 4000

	// TwoColorBound: palette third draw below 0.60 selects 2 colors, else 3.
	TwoColorBound = 60000

	// GrainBound: final paper draw below 0.30 enables grain.
	GrainBound = 30000

	// RareBound is the probability of each rare overlay trait (0.8%).
	RareBound = 800

	// Absorbency affine transform: a = AbsorbencyBase/100 + AbsorbencySpan/100 * r,
	// banded at AbsorbencyCrisp/100 and AbsorbencyStandard/100.
	AbsorbencyBase     = 25
	AbsorbencySpan     = 65
	AbsorbencyCrisp    = 45
	AbsorbencyStandard = 72

	// Derived fold count: FoldCountMin + floor(r * FoldCountSpread).
	FoldCountMin    = 4
	FoldCountSpread = 12

	// MaxFoldCount bounds explicit cycle counts; out-of-range values are
	// rejected, never clamped.
	MaxFoldCount = 64
)
