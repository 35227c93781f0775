package abj2016

import (
	"fmt"
	"runtime"
)

// Config controls posterior construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Prior selects the space-density prior: PriorUniformDistance,
	// PriorUniformDensity or PriorExponential. Default: PriorExponential.
	Prior Prior

	// Resolution is the number of points in the distance grid. Must be >= 2
	// (a single point cannot support trapezoidal normalization).
	// Default: 10000.
	Resolution int

	// MinDist and MaxDist bound the distance grid in kpc. MinDist must be
	// >= 0 and strictly less than MaxDist. Defaults: 0 and 30.
	MinDist float64
	MaxDist float64

	// ScaleLength is the length scale of the exponential prior in kpc. Only
	// used with PriorExponential. Must be > 0.
	// Default: DefaultScaleLength (1 kpc).
	ScaleLength float64

	// Workers controls the number of goroutines used across the observations
	// of a batch. Parallelism is an internal optimization with no effect on
	// results. 0 means runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// DefaultConfig returns a Config with the reference defaults.
func DefaultConfig() Config {
	return Config{
		Prior:       PriorExponential,
		Resolution:  10000,
		MinDist:     0,
		MaxDist:     30,
		ScaleLength: DefaultScaleLength,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Prior == "" {
		cfg.Prior = PriorExponential
	}
	if cfg.Resolution == 0 {
		cfg.Resolution = 10000
	}
	if cfg.MaxDist == 0 {
		cfg.MaxDist = 30
	}
	if cfg.ScaleLength == 0 {
		cfg.ScaleLength = DefaultScaleLength
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// *InvalidParameterError if not.
func validateConfig(cfg *Config) error {
	if cfg.Resolution < 2 {
		return &InvalidParameterError{Param: "Resolution",
			Reason: fmt.Sprintf("must be >= 2, got %d", cfg.Resolution)}
	}
	if cfg.MinDist < 0 {
		return &InvalidParameterError{Param: "MinDist",
			Reason: fmt.Sprintf("must be >= 0, got %g", cfg.MinDist)}
	}
	if cfg.MinDist >= cfg.MaxDist {
		return &InvalidParameterError{Param: "MinDist",
			Reason: fmt.Sprintf("must be < MaxDist, got MinDist=%g, MaxDist=%g", cfg.MinDist, cfg.MaxDist)}
	}
	if cfg.ScaleLength <= 0 {
		return &InvalidParameterError{Param: "ScaleLength",
			Reason: fmt.Sprintf("must be > 0, got %g", cfg.ScaleLength)}
	}
	if _, ok := cfg.Prior.densityFunc(*cfg); !ok {
		return &InvalidParameterError{Param: "Prior",
			Reason: fmt.Sprintf("unknown prior %q", string(cfg.Prior))}
	}
	return nil
}

// Posterior holds the discretized distance posterior for a batch of
// observations. All fields are computed eagerly during Estimate and are
// never mutated afterwards; treat them as read-only.
type Posterior struct {
	// DistArray is the distance grid in kpc, shared by all observations.
	DistArray []float64

	// DistPDF holds one normalized posterior density row per observation,
	// aligned with DistArray. Each row is non-negative everywhere and its
	// trapezoidal integral over DistArray is 1.
	DistPDF [][]float64

	// ModeDist is the grid value of maximum density per observation, kpc.
	ModeDist []float64

	// MeanDist is the posterior mean distance per observation, kpc,
	// computed from the discretized density.
	MeanDist []float64

	// DistStd is the posterior standard deviation per observation, kpc,
	// computed from the discretized density.
	DistStd []float64
}

// Len returns the number of observations in the batch.
func (p *Posterior) Len() int { return len(p.DistPDF) }

// QuantileDist returns, per observation, the distance in kpc below which
// fraction q of the posterior mass lies, interpolated on the discretized
// cumulative distribution.
func (p *Posterior) QuantileDist(q float64) []float64 {
	out := make([]float64, len(p.DistPDF))
	for i, row := range p.DistPDF {
		out[i] = pdfQuantile(p.DistArray, row, q)
	}
	return out
}

// MedianDist returns the posterior median distance per observation, kpc.
func (p *Posterior) MedianDist() []float64 { return p.QuantileDist(0.5) }

// Estimate builds the distance posterior for a batch of parallax
// measurements. parallax holds one measured parallax per observation in mas;
// negative values are accepted (noise can push a measured parallax below
// zero). parallaxErr holds the 1-sigma parallax uncertainties in mas, either
// one value per observation or a single value broadcast across the batch;
// every uncertainty must be strictly positive.
//
// All validation happens before any array is built; on error no partial
// result is returned. Errors are *InvalidParameterError,
// *ShapeMismatchError or *DegeneratePosteriorError.
func Estimate(parallax, parallaxErr []float64, cfg Config) (*Posterior, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if len(parallax) == 0 {
		return nil, &InvalidParameterError{Param: "parallax", Reason: "no observations"}
	}
	sigma, err := broadcastUncertainty(parallaxErr, len(parallax))
	if err != nil {
		return nil, err
	}
	for i, s := range sigma {
		if !(s > 0) {
			return nil, &InvalidParameterError{Param: "parallaxErr",
				Reason: fmt.Sprintf("must be > 0, got %g at index %d", s, i)}
		}
	}

	density, _ := cfg.Prior.densityFunc(cfg)
	grid := distanceGrid(cfg.MinDist, cfg.MaxDist, cfg.Resolution)
	prior := priorArray(grid, density)

	return estimatePosteriors(grid, prior, parallax, sigma, cfg.Workers)
}

// EstimateOne is the single-observation convenience form of Estimate. The
// returned Posterior has batch length 1.
func EstimateOne(parallax, parallaxErr float64, cfg Config) (*Posterior, error) {
	return Estimate([]float64{parallax}, []float64{parallaxErr}, cfg)
}

// broadcastUncertainty normalizes the uncertainty input to one value per
// observation. A length-1 slice is broadcast; any other length must match n.
func broadcastUncertainty(sigma []float64, n int) ([]float64, error) {
	switch len(sigma) {
	case n:
		return sigma, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = sigma[0]
		}
		return out, nil
	default:
		return nil, &ShapeMismatchError{ParallaxLen: n, UncertaintyLen: len(sigma)}
	}
}
