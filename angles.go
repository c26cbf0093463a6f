package lks92

import (
	"math"

	"github.com/golang/geo/s1"
)

const (
	halfPi = math.Pi / 2
	twoPi  = math.Pi * 2

	// maxLongitudeWraps bounds the number of reductions AdjustLongitude performs.
	maxLongitudeWraps = 4
	maxLong           = 2147483647
	dblLong           = 4.61168601e18
)

func degreesToRadians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func radiansToDegrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

// AdjustLongitude wraps a longitude in radians into [-pi, pi]. Very large
// inputs are reduced in coarse steps first so the result is reached in a
// bounded number of passes.
func AdjustLongitude(x float64) float64 {
	for count := 0; count <= maxLongitudeWraps; count++ {
		if math.Abs(x) <= math.Pi {
			break
		}
		switch {
		case int64(math.Abs(x/math.Pi)) < 2:
			x -= sign(x) * twoPi
		case int64(math.Abs(x/twoPi)) < maxLong:
			x -= float64(int64(x/twoPi)) * twoPi
		case int64(math.Abs(x/(maxLong*twoPi))) < maxLong:
			x -= float64(int64(x/(maxLong*twoPi))) * (twoPi * maxLong)
		case int64(math.Abs(x/(dblLong*twoPi))) < maxLong:
			x -= float64(int64(x/(dblLong*twoPi))) * (twoPi * dblLong)
		default:
			x -= sign(x) * twoPi
		}
	}
	return x
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func sinCos(x float64) (sin, cos float64) {
	return math.Sin(x), math.Cos(x)
}

func clip(n, minValue, maxValue float64) float64 {
	return math.Min(math.Max(n, minValue), maxValue)
}

// Meridional arc series coefficients, functions of the eccentricity squared.

func e0fn(x float64) float64 {
	return 1.0 - 0.25*x*(1.0+x/16.0*(3.0+1.25*x))
}

func e1fn(x float64) float64 {
	return 0.375 * x * (1.0 + 0.25*x*(1.0+0.46875*x))
}

func e2fn(x float64) float64 {
	return 0.05859375 * x * x * (1.0 + 0.75*x)
}

func e3fn(x float64) float64 {
	return x * x * x * (35.0 / 3072.0)
}

// mlfn returns the meridional arc from the equator to phi, in units of the
// semi-major axis.
func mlfn(e0, e1, e2, e3, phi float64) float64 {
	return e0*phi - e1*math.Sin(2.0*phi) + e2*math.Sin(4.0*phi) - e3*math.Sin(6.0*phi)
}
