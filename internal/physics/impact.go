package physics

import "math"

// Effective mass fraction at the handle and tip ends of the racket.
const (
	massRatioMin = 0.12
	massRatioMax = 0.35
)

// COR saturation limits for any string bed.
const (
	corMin = 0.35
	corMax = 0.55
)

// Clamp limits each element of a to [lo, hi]. lo must not exceed hi.
func Clamp(a []float64, lo, hi float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = clamp(v, lo, hi)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// EffectiveMass computes the apparent racket mass felt by the ball at each
// impact location. The mass fraction grows from the handle to the tip as a
// power law between massRatioMin and massRatioMax. xNorm is the normalised
// impact position (0 = handle, 1 = tip) and is not clamped here.
func EffectiveMass(mRacket, xNorm []float64) []float64 {
	out := make([]float64, len(xNorm))
	for i := range xNorm {
		ratio := massRatioMin + (massRatioMax-massRatioMin)*math.Pow(xNorm[i], 0.8)
		out[i] = ratio * mRacket[i]
	}
	return out
}

// ExitSpeed estimates ball rebound speed from a 1-D restitution model of a
// ball striking a free body of mass mEff.
func ExitSpeed(vIn float64, mEff []float64, mBall float64, e []float64) []float64 {
	out := make([]float64, len(mEff))
	for i := range mEff {
		out[i] = (1.0 + e[i]) * (mEff[i] / (mEff[i] + mBall)) * vIn
	}
	return out
}

// CORFromStringStiffness adjusts the coefficient of restitution for string
// stiffness: stiffer beds rebound slightly more elastically. The result
// saturates at [corMin, corMax] for any stiffness.
func CORFromStringStiffness(kString []float64, eBase float64) []float64 {
	out := make([]float64, len(kString))
	for i, k := range kString {
		out[i] = clamp(eBase+0.08*(k-3000.0)/1200.0, corMin, corMax)
	}
	return out
}
