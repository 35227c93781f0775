package abj2016

import "gonum.org/v1/gonum/floats"

// distanceGrid returns resolution evenly spaced distances spanning
// [minDist, maxDist] kpc, both endpoints included. The grid is built once
// per Estimate call and shared read-only across the batch.
func distanceGrid(minDist, maxDist float64, resolution int) []float64 {
	return floats.Span(make([]float64, resolution), minDist, maxDist)
}
