package fold

import (
	"github.com/lixenwraith/creasefold/fmath"
	"github.com/lixenwraith/creasefold/prng"
	"github.com/lixenwraith/creasefold/trait"
)

// Modulation constants, Q32.32. Part of the deterministic output; a change
// here is a coordinated migration.
var (
	qFreqBase   = fmath.FromFloat(0.05) // turns per cycle
	qFreqSpan   = fmath.FromFloat(0.20)
	qAmplitude  = fmath.FromFloat(0.45) // crease position swing around center
	qReduceBase = fmath.FromFloat(0.70) // per-cycle reduction floor
	qReduceSpan = fmath.FromFloat(0.30)
	qRadialStep = fmath.FromFloat(0.381966) // golden-angle turn increment
	qRadialWob  = fmath.FromFloat(0.25)
	qClusterAmp = fmath.FromFloat(0.15) // cluster spread around the focal cell
)

// Segment is one crease in cell-space Q32.32 coordinates, recorded for the
// crease-line overlay.
type Segment struct {
	X1, Y1, X2, Y2 int64
}

// Pattern is the simulation output: the populated grid plus the crease
// segments (only collected when the overlay trait is set).
type Pattern struct {
	Grid    *Grid
	Creases []Segment
}

// Simulate runs the fold cycles for one artwork. A fold count of zero
// yields an all-zero grid. The same (set, cols, rows, normalized) always
// produces the same pattern.
func Simulate(set trait.Set, cols, rows int, normalized uint32) *Pattern {
	p := &Pattern{Grid: NewGrid(cols, rows)}
	if set.FoldCount == 0 {
		return p
	}

	// Frequency and phase for both axes are drawn once, outside the cycle
	// loop, always all four and always in this order — even for strategies
	// that use a single axis.
	wave := prng.NewStream(normalized, trait.OffsetWaveform)
	freqX := qFreqBase + fmath.Mul(qFreqSpan, prng.Q(wave.Draw()))
	phaseX := prng.Q(wave.Draw())
	freqY := qFreqBase + fmath.Mul(qFreqSpan, prng.Q(wave.Draw()))
	phaseY := prng.Q(wave.Draw())

	var focalX, focalY int
	if set.Strategy == trait.StrategyRadial || set.Strategy == trait.StrategyCluster {
		fs := prng.NewStream(normalized, trait.OffsetFocal)
		focalX = prng.Scaled(fs.Draw(), cols)
		focalY = prng.Scaled(fs.Draw(), rows)
	}

	reduce := prng.NewStream(normalized, trait.OffsetReduction)

	var orient *prng.Source
	if set.Strategy == trait.StrategyRandom {
		orient = prng.NewStream(normalized, trait.OffsetOrientation)
	}

	sim := &simState{
		pattern: p,
		record:  set.CreaseLines,
	}

	base := set.Weight.Base()
	carry := int64(fmath.Scale)

	for c := 1; c <= set.FoldCount; c++ {
		// Paper memory fades: the reduction draws compound, so later
		// cycles contribute strictly less. One draw per cycle, cycle order.
		mult := qReduceBase + fmath.Mul(qReduceSpan, prng.Q(reduce.Draw()))
		carry = fmath.Mul(carry, mult)
		w := fmath.Mul(base, carry)

		angleX := fmath.Mul(freqX, fmath.FromInt(c)) + phaseX
		angleY := fmath.Mul(freqY, fmath.FromInt(c)) + phaseY
		posX := sinPos(angleX)
		posY := sinPos(angleY)

		switch set.Strategy {
		case trait.StrategyHorizontal:
			sim.row(cellIndex(posY, rows), w)

		case trait.StrategyVertical:
			sim.col(cellIndex(posX, cols), w)

		case trait.StrategyGrid:
			if c%2 == 1 {
				sim.row(cellIndex(posY, rows), w)
			} else {
				sim.col(cellIndex(posX, cols), w)
			}

		case trait.StrategyDiagonal:
			sim.diagonal(cellIndex(posX, cols), c%2 == 1, w)

		case trait.StrategyRadial:
			ang := fmath.Mul(qRadialStep, fmath.FromInt(c)) + fmath.Mul(qRadialWob, fmath.Sin(angleX))
			sim.ray(focalX, focalY, ang, w)

		case trait.StrategyCluster:
			if c%2 == 1 {
				off := fmath.ToInt(fmath.Mul(fmath.Mul(qClusterAmp, fmath.Sin(angleY)), fmath.FromInt(rows)))
				sim.row(fmath.ClampInt(focalY+off, 0, rows-1), w)
			} else {
				off := fmath.ToInt(fmath.Mul(fmath.Mul(qClusterAmp, fmath.Sin(angleX)), fmath.FromInt(cols)))
				sim.col(fmath.ClampInt(focalX+off, 0, cols-1), w)
			}

		case trait.StrategyRandom:
			// Orientation stream: one draw per cycle, random strategy only
			switch prng.Scaled(orient.Draw(), 4) {
			case 0:
				sim.row(cellIndex(posY, rows), w)
			case 1:
				sim.col(cellIndex(posX, cols), w)
			case 2:
				sim.diagonal(cellIndex(posX, cols), true, w)
			case 3:
				sim.diagonal(cellIndex(posX, cols), false, w)
			}
		}
	}

	return p
}

// sinPos maps an angle to a crease position fraction in [0.05, 0.95]:
// pos = 1/2 + amplitude * sin(angle).
func sinPos(angle int64) int64 {
	return fmath.Half + fmath.Mul(qAmplitude, fmath.Sin(angle))
}

// cellIndex converts a position fraction to a clamped cell index.
func cellIndex(pos int64, span int) int {
	return fmath.ClampInt(fmath.ToInt(fmath.Mul(pos, fmath.FromInt(span))), 0, span-1)
}

// simState carries the accumulation target through the per-cycle helpers.
type simState struct {
	pattern *Pattern
	record  bool
}

func (s *simState) segment(x1, y1, x2, y2 int64) {
	if s.record {
		s.pattern.Creases = append(s.pattern.Creases, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
}

// row accumulates a full horizontal crease.
func (s *simState) row(y int, w int64) {
	g := s.pattern.Grid
	for x := 0; x < g.Cols; x++ {
		g.Add(x, y, w)
	}
	s.segment(fmath.Half, center(y), fmath.FromInt(g.Cols-1)+fmath.Half, center(y))
}

// col accumulates a full vertical crease.
func (s *simState) col(x int, w int64) {
	g := s.pattern.Grid
	for y := 0; y < g.Rows; y++ {
		g.Add(x, y, w)
	}
	s.segment(center(x), fmath.Half, center(x), fmath.FromInt(g.Rows-1)+fmath.Half)
}

// diagonal walks a 45-degree crease anchored on the top row. up45 runs
// down-right, otherwise down-left. The walk stops at the first cell
// outside the grid.
func (s *simState) diagonal(startCol int, up45 bool, w int64) {
	g := s.pattern.Grid
	x1 := center(startCol)
	y1 := int64(fmath.Half)

	step := g.Rows - 1
	var x2 int64
	if up45 {
		x2 = center(startCol + step)
	} else {
		x2 = center(startCol - step)
	}
	y2 := center(step)

	s.walk(x1, y1, x2, y2, w)
}

// ray walks a radial crease from the focal cell toward the border at the
// given angle (turns).
func (s *simState) ray(focalX, focalY int, ang, w int64) {
	g := s.pattern.Grid
	x1 := center(focalX)
	y1 := center(focalY)

	reach := fmath.FromInt(2 * (g.Cols + g.Rows))
	x2 := x1 + fmath.Mul(fmath.Cos(ang), reach)
	y2 := y1 + fmath.Mul(fmath.Sin(ang), reach)

	s.walk(x1, y1, x2, y2, w)
}

// walk accumulates along a Supercover DDA line, stopping once it leaves
// the grid, and records the crease segment.
func (s *simState) walk(x1, y1, x2, y2 int64, w int64) {
	g := s.pattern.Grid
	var lastX, lastY int
	first := true
	fmath.Traverse(x1, y1, x2, y2, func(x, y int) bool {
		if !g.Add(x, y, w) {
			return false
		}
		lastX, lastY = x, y
		first = false
		return true
	})
	if !first {
		s.segment(x1, y1, center(lastX), center(lastY))
	}
}

// center returns the Q32.32 coordinate of a cell center.
func center(i int) int64 {
	return fmath.FromInt(i) + fmath.Half
}
