package abj2016

import "math"

// Prior selects the space-density prior combined with the parallax
// likelihood (Table 1 of Astraatmadja & Bailer-Jones 2016).
type Prior string

const (
	// PriorUniformDistance is flat in distance out to the grid's upper bound.
	PriorUniformDistance Prior = "uniform_distance"
	// PriorUniformDensity assumes uniform stellar density in 3-D space, so
	// the density in distance grows as d².
	PriorUniformDensity Prior = "uniform_density"
	// PriorExponential models a stellar density that decays exponentially
	// with distance on the scale Config.ScaleLength.
	PriorExponential Prior = "exponential"
)

// DefaultScaleLength is the default length scale of the exponentially
// decreasing space-density prior, in kpc. Override via Config.ScaleLength.
const DefaultScaleLength = 1.0

// UniformDistancePrior is the uniform distance prior: constant on
// [0, rlim] kpc and zero outside.
func UniformDistancePrior(d, rlim float64) float64 {
	if d < 0 || d > rlim {
		return 0
	}
	return 1 / rlim
}

// UniformDensityPrior is the uniform space-density prior: proportional to
// d² on [0, rlim] kpc (the volume element) and zero outside.
func UniformDensityPrior(d, rlim float64) float64 {
	if d < 0 || d > rlim {
		return 0
	}
	return d * d / (rlim * rlim * rlim)
}

// ExpPrior is the exponentially decreasing space-density prior with length
// scale scaleLength kpc: proportional to d²·exp(−d/L) for d ≥ 0.
func ExpPrior(d, scaleLength float64) float64 {
	if d < 0 {
		return 0
	}
	return d * d * math.Exp(-d/scaleLength) / (2 * scaleLength * scaleLength * scaleLength)
}

// densityFunc resolves the prior variant to its evaluator. Reports false for
// an unrecognized variant.
func (p Prior) densityFunc(cfg Config) (func(d float64) float64, bool) {
	switch p {
	case PriorUniformDistance:
		return func(d float64) float64 { return UniformDistancePrior(d, cfg.MaxDist) }, true
	case PriorUniformDensity:
		return func(d float64) float64 { return UniformDensityPrior(d, cfg.MaxDist) }, true
	case PriorExponential:
		return func(d float64) float64 { return ExpPrior(d, cfg.ScaleLength) }, true
	default:
		return nil, false
	}
}

// priorArray evaluates the prior once over the grid. The batch shares this
// array read-only; the prior is never recomputed per observation.
func priorArray(grid []float64, density func(d float64) float64) []float64 {
	out := make([]float64, len(grid))
	for i, d := range grid {
		out[i] = density(d)
	}
	return out
}
