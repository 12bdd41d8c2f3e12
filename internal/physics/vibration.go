package physics

import (
	"math"
	"math/rand"
)

// ModeShape1 is the first bending mode proxy: a half-sine along the
// normalised racket length, zero near the handle.
func ModeShape1(xNorm []float64) []float64 {
	out := make([]float64, len(xNorm))
	for i, x := range xNorm {
		out[i] = math.Sin(math.Pi * x)
	}
	return out
}

// ModeShape2 is the second bending mode proxy: a full sine with one interior
// node.
func ModeShape2(xNorm []float64) []float64 {
	out := make([]float64, len(xNorm))
	for i, x := range xNorm {
		out[i] = math.Sin(2.0 * math.Pi * x)
	}
	return out
}

// VibrationScore combines modal energy injection at the impact point with
// string stiffness amplification, structural damping attenuation and
// mass-based inertial damping. Lower is better for comfort. Non-negative for
// positive stiffness and mass and damping >= 0.
func VibrationScore(xNorm, kString, damping, mRacket []float64) []float64 {
	out := make([]float64, len(xNorm))
	for i := range xNorm {
		phi1 := math.Sin(math.Pi * xNorm[i])
		phi2 := math.Sin(2.0 * math.Pi * xNorm[i])

		injected := phi1*phi1 + 0.6*phi2*phi2
		stiffness := math.Pow(kString[i]/3000.0, 0.35)
		damp := 1.0 / (1.0 + 8.0*damping[i])
		mass := math.Pow(0.32/mRacket[i], 0.25)

		out[i] = injected * stiffness * damp * mass
	}
	return out
}

// ShockProxy estimates the handle shock felt by the player: vibration
// amplitude scaled by distance from the handle reference point and a string
// stiffness boost, plus additive Gaussian noise drawn per element from rng.
// The generator is mandatory so every run is reproducible from its seed.
// The result can dip below zero once noise is applied.
func ShockProxy(vib, xNorm, kString []float64, xHandleNorm, noiseStd float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(vib))
	for i := range vib {
		dist := clamp(xNorm[i]-xHandleNorm, 0.0, 1.0)
		boost := 1.0 + 0.12*(kString[i]-3000.0)/1200.0
		noise := rng.NormFloat64() * noiseStd
		out[i] = vib[i]*(0.55+0.45*dist)*boost + noise
	}
	return out
}
