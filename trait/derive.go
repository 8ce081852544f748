// Package trait derives the categorical and numeric traits of one artwork
// from a normalized seed. Every trait consumes a fixed number of draws, in
// a fixed order, from its own offset stream; traits on different streams
// are independent, draws within one stream are strictly ordered. Some
// draws are consumed and deliberately discarded — they keep the stream
// aligned with the on-chain mirror and must never be removed.
package trait

import (
	"github.com/lixenwraith/creasefold/prng"
)

// DeriveCount means "no explicit fold count: derive it from the seed".
const DeriveCount = -1

// Derive computes the trait set for a normalized seed. foldCount is either
// an explicit non-negative cycle count or DeriveCount. The result depends
// only on these two inputs — never on canvas dimensions.
func Derive(normalized uint32, foldCount int) Set {
	var t Set

	if foldCount == DeriveCount {
		s := prng.NewStream(normalized, OffsetFoldCount)
		t.FoldCount = FoldCountMin + prng.Scaled(s.Draw(), FoldCountSpread)
	} else {
		t.FoldCount = foldCount
	}

	t.Strategy = FoldStrategy(StrategyLadder.Classify(draw(normalized, OffsetStrategy)))
	t.Mode = RenderMode(ModeLadder.Classify(draw(normalized, OffsetRenderMode)))
	t.Palette = derivePalette(normalized)
	t.Paper = derivePaper(normalized)
	t.Direction = DrawDirection(DirectionLadder.Classify(draw(normalized, OffsetDirection)))
	t.Margin = MarginClass(MarginLadder.Classify(draw(normalized, OffsetMargin)))
	t.Weight = weightRanges[WeightLadder.Classify(draw(normalized, OffsetWeightRange))]
	t.CreaseLines = prng.Less(draw(normalized, OffsetCreaseLines), RareBound)
	t.HitCounts = prng.Less(draw(normalized, OffsetHitCounts), RareBound)

	return t
}

// draw is the one-draw trait shape: fresh stream, single value.
func draw(normalized, offset uint32) uint32 {
	return prng.NewStream(normalized, offset).Draw()
}

func derivePalette(normalized uint32) Palette {
	s := prng.NewStream(normalized, OffsetPalette)

	if prng.Less(s.Draw(), MonochromeBound) {
		// Monochrome takes no further draws; the mirror branches the same way.
		return Palette{Monochrome: true, Colors: 1}
	}

	p := Palette{
		Contrast: ContrastStrategy(ContrastLadder.Classify(s.Draw())),
	}
	if prng.Less(s.Draw(), TwoColorBound) {
		p.Colors = 2
	} else {
		p.Colors = 3
	}
	p.BaseIndex = prng.Scaled(s.Draw(), 16)
	return p
}

func derivePaper(normalized uint32) Paper {
	s := prng.NewStream(normalized, OffsetPaper)

	// Absorbency a = 0.25 + 0.65*r, compared in integers:
	// a < band/100  <=>  25*M + 65*state < band*M
	state := uint64(s.Draw())
	a := AbsorbencyBase*uint64(prng.MaxState) + AbsorbencySpan*state

	var p Paper
	switch {
	case a < AbsorbencyCrisp*uint64(prng.MaxState):
		p.Type = PaperCrisp
	case a < AbsorbencyStandard*uint64(prng.MaxState):
		p.Type = PaperStandard
	default:
		p.Type = PaperBlotting
	}

	p.GrainAngle = prng.Scaled(s.Draw(), 180)
	s.Draw() // discarded jitter draw; keeps stream alignment with the mirror
	p.Grain = prng.Less(s.Draw(), GrainBound)

	return p
}
