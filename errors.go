package abj2016

import "fmt"

// InvalidParameterError indicates a parameter that failed validation before
// any computation was performed.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("abj2016: invalid parameter %s: %s", e.Param, e.Reason)
}

// ShapeMismatchError indicates that parallax and uncertainty were both
// supplied as sequences but with differing lengths.
type ShapeMismatchError struct {
	ParallaxLen    int
	UncertaintyLen int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("abj2016: parallax length %d does not match uncertainty length %d",
		e.ParallaxLen, e.UncertaintyLen)
}

// DegeneratePosteriorError indicates an observation whose unnormalized
// posterior integrates to (numerically) zero over the distance grid, so no
// normalized density exists. This happens when the combination of parallax
// and uncertainty places all posterior mass outside [MinDist, MaxDist].
type DegeneratePosteriorError struct {
	// Index is the observation's position in the input batch.
	Index       int
	Parallax    float64
	Uncertainty float64
}

func (e *DegeneratePosteriorError) Error() string {
	return fmt.Sprintf("abj2016: posterior for observation %d (parallax=%g mas, uncertainty=%g mas) integrates to zero over the distance grid",
		e.Index, e.Parallax, e.Uncertainty)
}
