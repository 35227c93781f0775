package abj2016

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// pdfMode returns the grid value at the index of maximum density.
func pdfMode(grid, pdf []float64) float64 {
	return grid[floats.MaxIdx(pdf)]
}

// pdfMean returns the density-weighted first moment of the grid.
func pdfMean(grid, pdf []float64) float64 {
	return stat.Mean(grid, pdf)
}

// pdfStd returns the square root of the density-weighted second central
// moment about mean.
func pdfStd(grid, pdf []float64, mean float64) float64 {
	return math.Sqrt(stat.MomentAbout(2, grid, mean, pdf))
}

// pdfQuantile returns the distance below which fraction q of the posterior
// mass lies, by accumulating trapezoid segments and interpolating linearly
// inside the segment that crosses q. pdf must be normalized so its
// trapezoidal integral over grid is 1.
func pdfQuantile(grid, pdf []float64, q float64) float64 {
	if q <= 0 {
		return grid[0]
	}
	if q >= 1 {
		return grid[len(grid)-1]
	}
	var cum float64
	for i := 1; i < len(grid); i++ {
		seg := 0.5 * (pdf[i-1] + pdf[i]) * (grid[i] - grid[i-1])
		if cum+seg >= q {
			if seg == 0 {
				return grid[i]
			}
			return grid[i-1] + (q-cum)/seg*(grid[i]-grid[i-1])
		}
		cum += seg
	}
	// q beyond the accumulated mass (normalization round-off).
	return grid[len(grid)-1]
}
