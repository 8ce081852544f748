package fmath

import (
	"math"
)

func init() {
	// Sin/Cos LUT calculation
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int64(math.Sin(rad) * ScaleF)
		CosLUT[i] = int64(math.Cos(rad) * ScaleF)
	}
}

// SinLUT and CosLUT scaled by Q32.32, indexed in turns
var (
	SinLUT [LUTSize]int64
	CosLUT [LUTSize]int64
)

// Sin returns sine of an angle where angle 0..Scale maps to 0..2pi
func Sin(angle int64) int64 {
	return SinLUT[(angle>>(Shift-10))&LUTMask]
}

// Cos returns cosine of an angle where angle 0..Scale maps to 0..2pi
func Cos(angle int64) int64 {
	return CosLUT[(angle>>(Shift-10))&LUTMask]
}
