package abj2016

import "gonum.org/v1/gonum/stat/distuv"

// Likelihood is the Gaussian likelihood of measuring parallax p (mas) for a
// star at true distance d (kpc) with parallax uncertainty sigma (mas):
// N(p; 1/d, sigma), formula 1 of Astraatmadja & Bailer-Jones (2016).
//
// The reciprocal relationship between parallax and distance is what makes
// the posterior asymmetric in d. At d = 0 the implied parallax is infinite
// and the density is 0; no special-casing is needed.
func Likelihood(p, d, sigma float64) float64 {
	return distuv.Normal{Mu: 1 / d, Sigma: sigma}.Prob(p)
}
