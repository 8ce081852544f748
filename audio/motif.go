// Package audio turns a trait set into a short generated motif: a few
// synthesized notes whose waveform, scale and envelope follow the artwork's
// traits. Generation is deterministic per seed; playback is optional and
// lives in Player.
package audio

import (
	"math"

	"github.com/lixenwraith/creasefold/prng"
	"github.com/lixenwraith/creasefold/trait"
)

const sampleRateHz = 48000

// Motif note stream offset, outside the trait offset table so audio can
// never perturb trait parity.
const offsetMotif = 1511

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples. Noise draws from src so the
// buffer is reproducible for a given seed.
func oscillator(waveType int, freq float64, samples int, src *prng.Source) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRateHz)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = src.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * sampleRateHz)
	releaseSamples := int(releaseSec * sampleRateHz)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

func durationToSamples(d float64) int {
	return int(d * sampleRateHz)
}

// pentatonic is one octave of A minor pentatonic starting at A4.
var pentatonic = []float64{440.00, 523.25, 587.33, 659.25, 783.99}

// waveformFor maps the fold strategy family to a waveform: axis-aligned
// strategies sound clean, diagonal cuts, the focal pair rings, random hisses.
func waveformFor(s trait.FoldStrategy) int {
	switch s {
	case trait.StrategyHorizontal, trait.StrategyVertical, trait.StrategyGrid:
		return waveSquare
	case trait.StrategyDiagonal:
		return waveSaw
	case trait.StrategyRadial, trait.StrategyCluster:
		return waveSine
	default:
		return waveNoise
	}
}

// envelopeFor maps paper absorbency to attack/release seconds: crisp paper
// gets a sharp pluck, blotting a slow swell.
func envelopeFor(p trait.PaperType) (attack, release float64) {
	switch p {
	case trait.PaperCrisp:
		return 0.005, 0.06
	case trait.PaperStandard:
		return 0.02, 0.10
	default:
		return 0.06, 0.18
	}
}

// Motif synthesizes the note sequence for a trait set. The note count grows
// with the fold count (4 to 12 notes), pitches are drawn from the pentatonic
// scale transposed by the palette base index, and a monochrome palette drops
// the motif an octave.
func Motif(set trait.Set, normalized uint32) []float64 {
	noteCount := 4 + set.FoldCount/8
	if noteCount > 12 {
		noteCount = 12
	}

	wave := waveformFor(set.Strategy)
	attack, release := envelopeFor(set.Paper.Type)
	noteDur := 0.12 + release/2

	transpose := math.Pow(2, float64(set.Palette.BaseIndex%12)/12)
	octave := 1.0
	if set.Palette.Monochrome {
		octave = 0.5
	}

	src := prng.NewStream(normalized, offsetMotif)

	var out floatBuffer
	for i := 0; i < noteCount; i++ {
		degree := int(src.Draw()) % len(pentatonic)
		freq := pentatonic[degree] * transpose * octave

		samples := durationToSamples(noteDur)
		note := oscillator(wave, freq, samples, src)
		applyEnvelope(note, attack, release)
		out = concatFloatBuffers(out, note)
	}
	return out
}
