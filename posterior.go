package abj2016

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// posteriorRow fills row with the normalized posterior density for a single
// observation: prior times Gaussian parallax likelihood at every grid point,
// divided by the trapezoidal integral over the grid (formula 2 of
// Astraatmadja & Bailer-Jones 2016). Reports false when the integral is
// numerically zero, i.e. the posterior is degenerate on this grid.
func posteriorRow(grid, prior []float64, p, sigma float64, row []float64) bool {
	for i, d := range grid {
		row[i] = prior[i] * Likelihood(p, d, sigma)
	}
	z := integrate.Trapezoidal(grid, row)
	if z == 0 || math.IsNaN(z) {
		return false
	}
	floats.Scale(1/z, row)
	return true
}
