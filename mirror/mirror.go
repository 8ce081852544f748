// Package mirror re-derives the trait set the way the on-chain contract
// does: fixed-width unsigned integer arithmetic only, no PRNG type, no
// Q32.32, no float anywhere. It shares the ladder tables exported by
// package trait — thresholds must not be able to drift between the two
// implementations — but owns every arithmetic step. mirror.Derive must
// equal trait.Derive field-for-field for every seed; that identity is the
// engine's central correctness property.
package mirror

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/creasefold/prng"
	"github.com/lixenwraith/creasefold/trait"
)

const (
	maxState   uint64 = 1<<31 - 1
	modMask    uint64 = 1<<31 - 1 // mod 2^31 as a mask
	multiplier uint64 = 1103515245
	increment  uint64 = 12345
	thresholdScale uint64 = 100000
)

// Derive computes the trait set for a hex seed using contract-shaped
// arithmetic. foldCount below zero means "derive from the seed".
func Derive(seed string, foldCount int) (trait.Set, error) {
	norm, err := normalize(seed)
	if err != nil {
		return trait.Set{}, err
	}

	var t trait.Set

	if foldCount < 0 {
		s := stream(norm, trait.OffsetFoldCount)
		s = next(s)
		t.FoldCount = trait.FoldCountMin + int(s*uint64(trait.FoldCountSpread)/maxState)
	} else {
		t.FoldCount = foldCount
	}

	t.Strategy = trait.FoldStrategy(classify(one(norm, trait.OffsetStrategy), trait.StrategyLadder))
	t.Mode = trait.RenderMode(classify(one(norm, trait.OffsetRenderMode), trait.ModeLadder))
	t.Palette = palette(norm)
	t.Paper = paper(norm)
	t.Direction = trait.DrawDirection(classify(one(norm, trait.OffsetDirection), trait.DirectionLadder))
	t.Margin = trait.MarginClass(classify(one(norm, trait.OffsetMargin), trait.MarginLadder))
	t.Weight = trait.WeightRangeFor(classify(one(norm, trait.OffsetWeightRange), trait.WeightLadder))
	t.CreaseLines = below(one(norm, trait.OffsetCreaseLines), trait.RareBound)
	t.HitCounts = below(one(norm, trait.OffsetHitCounts), trait.RareBound)

	return t, nil
}

func palette(norm uint64) trait.Palette {
	s := stream(norm, trait.OffsetPalette)

	s = next(s)
	if below(s, trait.MonochromeBound) {
		return trait.Palette{Monochrome: true, Colors: 1}
	}

	var p trait.Palette
	s = next(s)
	p.Contrast = trait.ContrastStrategy(classify(s, trait.ContrastLadder))
	s = next(s)
	if below(s, trait.TwoColorBound) {
		p.Colors = 2
	} else {
		p.Colors = 3
	}
	s = next(s)
	p.BaseIndex = int(s * 16 / maxState)
	return p
}

func paper(norm uint64) trait.Paper {
	s := stream(norm, trait.OffsetPaper)

	s = next(s)
	a := uint64(trait.AbsorbencyBase)*maxState + uint64(trait.AbsorbencySpan)*s

	var p trait.Paper
	switch {
	case a < uint64(trait.AbsorbencyCrisp)*maxState:
		p.Type = trait.PaperCrisp
	case a < uint64(trait.AbsorbencyStandard)*maxState:
		p.Type = trait.PaperStandard
	default:
		p.Type = trait.PaperBlotting
	}

	s = next(s)
	p.GrainAngle = int(s * 180 / maxState)
	s = next(s) // alignment draw, result unused by contract as well
	s = next(s)
	p.Grain = below(s, trait.GrainBound)

	return p
}

// --- contract arithmetic ---

func next(s uint64) uint64 {
	return (s*multiplier + increment) & modMask
}

func stream(norm, offset uint64) uint64 {
	s := (norm + offset) % maxState
	if s == 0 {
		s = 1
	}
	return s
}

func one(norm, offset uint64) uint64 {
	return next(stream(norm, offset))
}

func below(state uint64, bound uint32) bool {
	return state*thresholdScale < uint64(bound)*maxState
}

func classify(state uint64, ladder trait.Ladder) int {
	for i, upper := range ladder {
		if below(state, upper) {
			return i
		}
	}
	return len(ladder) - 1
}

// normalize mirrors prng.Normalize digit for digit: first 16 hex digits as
// a big-endian uint64, reduced modulo 2^31-1.
func normalize(seed string) (uint64, error) {
	h := seed
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}
	if len(h) == 0 || len(h) > 64 {
		return 0, fmt.Errorf("%w: got %d digits", prng.ErrSeedFormat, len(h))
	}
	if len(h) > 16 {
		h = h[:16]
	}

	var v uint64
	for _, c := range h {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, fmt.Errorf("%w: invalid digit %q", prng.ErrSeedFormat, c)
		}
		v = v<<4 | d
	}

	return v % maxState, nil
}
