// Package abj2016 infers stellar distances from trigonometric parallaxes
// using the Bayesian formalism of Astraatmadja & Bailer-Jones (2016).
//
// A measured parallax p with uncertainty sigma does not translate into a
// distance by naive inversion d = 1/p: the reciprocal relationship makes the
// likelihood asymmetric in distance, and for large fractional uncertainties
// (or a negative measured parallax) the inversion is meaningless. The
// package instead combines the Gaussian parallax likelihood with a
// space-density prior and returns the full posterior over distance,
// discretized on an evenly spaced grid, together with its mode, mean and
// standard deviation.
//
// Units are fixed: parallaxes and their uncertainties are in
// milliarcseconds, all distances in kiloparsecs (d = 1/p relates the two).
//
// Basic usage:
//
//	cfg := abj2016.DefaultConfig()
//	post, err := abj2016.EstimateOne(0.3, 0.1, cfg)
//	// post.ModeDist[0], post.MeanDist[0], post.DistStd[0] summarize the
//	// posterior; post.DistArray and post.DistPDF[0] hold the full density.
//
// Batches share a single distance grid and prior array:
//
//	post, err := abj2016.Estimate(parallaxes, uncertainties, cfg)
//
// # Priors
//
// Three isotropic priors from Table 1 of the paper are available. The
// uniform distance prior is flat out to the grid bound; the uniform density
// prior assumes constant stellar density in space (d² in distance); the
// exponential prior (the default) models a stellar density decaying on the
// scale Config.ScaleLength. Set Config.Prior to choose:
//
//	cfg.Prior = abj2016.PriorUniformDistance
//	cfg.Prior = abj2016.PriorUniformDensity
//	cfg.Prior = abj2016.PriorExponential
package abj2016
