// Package prng implements the seeded linear-congruential generator that
// drives every trait and fold decision. The on-chain mirror performs the
// same modular multiply-add in fixed-width integer arithmetic, so the
// constants here are a de facto wire format: changing any of them changes
// every artwork ever minted.
package prng

const (
	// MaxState is the normalization divisor 2^31-1. State after an advance
	// lies in [0, Modulus-1]; ratios are state/MaxState.
	MaxState = 1<<31 - 1

	// Modulus is the LCG modulus 2^31.
	Modulus = 1 << 31

	multiplier = 1103515245
	increment  = 12345

	// ThresholdScale is the denominator of every probability threshold.
	// A threshold of 18000 means 0.18.
	ThresholdScale = 100000
)

// Source is a single PRNG stream. One stream is owned by exactly one
// derivation; streams are never shared or reused across renders.
type Source struct {
	state uint32
}

// New creates a stream from a seed. Seeds are reduced modulo 2^31-1 and a
// zero seed is coerced to 1 so the stream can never degenerate.
func New(seed uint32) *Source {
	s := seed % MaxState
	if s == 0 {
		s = 1
	}
	return &Source{state: s}
}

// NewStream forks an independent stream by offsetting the normalized seed.
// Streams at distinct offsets are order-independent of each other; draws
// within one stream are strictly ordered.
func NewStream(normalized, offset uint32) *Source {
	return New((normalized + offset) % MaxState)
}

// Draw advances the stream and returns the raw integer state. Branch
// decisions must be made on this value (see Less, Scaled, Q) — never on a
// rounded float.
func (s *Source) Draw() uint32 {
	s.state = uint32((uint64(s.state)*multiplier + increment) & (Modulus - 1))
	return s.state
}

// Float64 advances the stream and returns the state as a ratio. For
// display and documentation; decisions go through the integer helpers.
func (s *Source) Float64() float64 {
	return Ratio(s.Draw())
}

// Ratio converts a drawn state to its [0,1] ratio.
func Ratio(state uint32) float64 {
	return float64(state) / float64(MaxState)
}

// Less reports whether a drawn state falls below bound/ThresholdScale.
// Cross-multiplied so the comparison is exact: ties go to the upper
// bucket ("< threshold", never "<=").
func Less(state, bound uint32) bool {
	return uint64(state)*ThresholdScale < uint64(bound)*MaxState
}

// Scaled returns floor(ratio * n) for a drawn state, computed in integers.
func Scaled(state uint32, n int) int {
	return int(uint64(state) * uint64(n) / MaxState)
}

// Q returns the drawn state as a Q32.32 ratio in [0, Scale].
func Q(state uint32) int64 {
	return int64((uint64(state) << 32) / MaxState)
}
