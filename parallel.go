package abj2016

import "sync"

// estimatePosteriors computes one normalized posterior row per observation
// plus the derived statistics. The grid and prior array are shared read-only
// across the batch; every row is independent of every other, so observations
// are split across workers in contiguous chunks. Since chunks don't overlap,
// no synchronization is needed for writes. The result is bitwise identical
// to the single-threaded path.
func estimatePosteriors(grid, prior, parallax, sigma []float64, numWorkers int) (*Posterior, error) {
	n := len(parallax)
	res := len(grid)

	// One flat backing array keeps the batch contiguous; rows are capped
	// reslices so an append on one row can never spill into the next.
	backing := make([]float64, n*res)
	pdf := make([][]float64, n)
	for i := range pdf {
		pdf[i] = backing[i*res : (i+1)*res : (i+1)*res]
	}
	degenerate := make([]bool, n)

	if numWorkers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			degenerate[i] = !posteriorRow(grid, prior, parallax[i], sigma[i], pdf[i])
		}
	} else {
		var wg sync.WaitGroup
		rowsPerWorker := (n + numWorkers - 1) / numWorkers

		for w := 0; w < numWorkers; w++ {
			start := w * rowsPerWorker
			end := min(start+rowsPerWorker, n)
			if start >= n {
				break
			}

			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					degenerate[i] = !posteriorRow(grid, prior, parallax[i], sigma[i], pdf[i])
				}
			}(start, end)
		}

		wg.Wait()
	}

	for i, bad := range degenerate {
		if bad {
			return nil, &DegeneratePosteriorError{Index: i, Parallax: parallax[i], Uncertainty: sigma[i]}
		}
	}

	mode := make([]float64, n)
	mean := make([]float64, n)
	std := make([]float64, n)
	for i := 0; i < n; i++ {
		mode[i] = pdfMode(grid, pdf[i])
		mean[i] = pdfMean(grid, pdf[i])
		std[i] = pdfStd(grid, pdf[i], mean[i])
	}

	return &Posterior{
		DistArray: grid,
		DistPDF:   pdf,
		ModeDist:  mode,
		MeanDist:  mean,
		DistStd:   std,
	}, nil
}
