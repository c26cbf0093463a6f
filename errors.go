package lks92

import (
	"errors"
	"fmt"
)

// ErrLatitudeConvergence is reported when the footpoint latitude of an
// inverse Transverse Mercator projection does not converge.
var ErrLatitudeConvergence = errors.New("latitude failed to converge")

// ConvergenceError carries the input that made the inverse projection fail.
// Retrying with the same input gives the same result.
type ConvergenceError struct {
	Easting    float64
	Northing   float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations (easting %g, northing %g)",
		ErrLatitudeConvergence, e.Iterations, e.Easting, e.Northing)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrLatitudeConvergence
}
