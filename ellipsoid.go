package lks92

import (
	"errors"
	"math"
)

const (
	cos67p5 = 0.38268343236508977 // cosine of 67.5 degrees
	adC     = 1.0026000           // Toms region 1 constant
)

// Ellipsoid is a reference ellipsoid given by its semi-major and semi-minor
// axes in meters. The derived parameters are recomputed from the axes on
// every call, so two ellipsoids with equal axes always agree bit for bit.
type Ellipsoid struct {
	SemiMajorAxis float64
	SemiMinorAxis float64
}

// NewEllipsoid validates the axes and returns the ellipsoid.
func NewEllipsoid(semiMajorAxis, semiMinorAxis float64) (Ellipsoid, error) {
	e := Ellipsoid{SemiMajorAxis: semiMajorAxis, SemiMinorAxis: semiMinorAxis}
	if err := e.validate(); err != nil {
		return Ellipsoid{}, err
	}
	return e, nil
}

func (e Ellipsoid) validate() error {
	if !(e.SemiMajorAxis > 0) {
		return errors.New("semi-major axis must be greater than zero")
	}
	if !(e.SemiMinorAxis > 0) || e.SemiMinorAxis > e.SemiMajorAxis {
		return errors.New("semi-minor axis out of range")
	}
	return nil
}

// EccentricitySquared returns e² = 1 - (b/a)².
func (e Ellipsoid) EccentricitySquared() float64 {
	ba := e.InverseAxisRatio()
	return 1.0 - ba*ba
}

// SecondEccentricitySquared returns e'² = (a²-b²)/b².
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	a, b := e.SemiMajorAxis, e.SemiMinorAxis
	return (a*a - b*b) / (b * b)
}

// AxisRatio returns a/b.
func (e Ellipsoid) AxisRatio() float64 {
	return e.SemiMajorAxis / e.SemiMinorAxis
}

// InverseAxisRatio returns b/a.
func (e Ellipsoid) InverseAxisRatio() float64 {
	return e.SemiMinorAxis / e.SemiMajorAxis
}

// Flattening returns (a-b)/a.
func (e Ellipsoid) Flattening() float64 {
	return (e.SemiMajorAxis - e.SemiMinorAxis) / e.SemiMajorAxis
}

// ToGeocentric converts a geodetic position on e to earth-centered
// cartesian coordinates.
func (e Ellipsoid) ToGeocentric(g GeodeticCoord) GeocentricCoord {
	es := e.EccentricitySquared()
	lon := degreesToRadians(g.Lon)
	lat := degreesToRadians(g.Lat)
	h := g.height()

	sinLat, cosLat := sinCos(lat)
	v := e.SemiMajorAxis / math.Sqrt(1-es*sinLat*sinLat)
	return GeocentricCoord{
		X: (v + h) * cosLat * math.Cos(lon),
		Y: (v + h) * cosLat * math.Sin(lon),
		Z: ((1-es)*v + h) * sinLat,
	}
}

// ToGeodetic converts earth-centered cartesian coordinates to a geodetic
// position on e using a single pass of Bowring's approximation.
//
// The center of the earth has no geodetic position; it is reported as
// longitude 0, latitude 90 and a height of minus the semi-minor axis.
func (e Ellipsoid) ToGeodetic(c GeocentricCoord) GeodeticCoord {
	a, b := e.SemiMajorAxis, e.SemiMinorAxis
	es := e.EccentricitySquared()
	ses := e.SecondEccentricitySquared()

	x, y, z := c.X, c.Y, c.Z
	if math.IsNaN(z) {
		z = 0
	}

	atPole := false
	var lon, lat float64
	if x != 0.0 {
		lon = math.Atan2(y, x)
	} else {
		switch {
		case y > 0:
			lon = halfPi
		case y < 0:
			lon = -halfPi
		default:
			atPole = true
			lon = 0.0
			switch {
			case z > 0.0:
				lat = halfPi
			case z < 0.0:
				lat = -halfPi
			default:
				return GeodeticCoord{Lon: radiansToDegrees(lon), Lat: radiansToDegrees(halfPi), Height: -b}
			}
		}
	}

	w2 := x*x + y*y
	w := math.Sqrt(w2) // distance from the z axis
	t0 := z * adC
	s0 := math.Sqrt(t0*t0 + w2)
	sinB0 := t0 / s0 // B0 estimates Bowring's auxiliary latitude
	cosB0 := w / s0
	sin3B0 := sinB0 * sinB0 * sinB0
	t1 := z + b*ses*sin3B0
	sum := w - a*es*cosB0*cosB0*cosB0
	s1 := math.Sqrt(t1*t1 + sum*sum)
	sinP1 := t1 / s1 // phi1 is the estimated latitude
	cosP1 := sum / s1
	rn := a / math.Sqrt(1.0-es*sinP1*sinP1)

	var height float64
	switch {
	case cosP1 >= cos67p5:
		height = w/cosP1 - rn
	case cosP1 <= -cos67p5:
		height = w/-cosP1 - rn
	default:
		height = z/sinP1 + rn*(es-1.0)
	}

	if !atPole {
		lat = math.Atan(sinP1 / cosP1)
	}
	return GeodeticCoord{Lon: radiansToDegrees(lon), Lat: radiansToDegrees(lat), Height: height}
}

// DatumShift moves geodetic coordinates from one ellipsoid to another by way
// of earth-centered cartesian coordinates. The two ellipsoids share an origin
// and orientation, so no Helmert parameters are involved.
type DatumShift struct {
	From Ellipsoid
	To   Ellipsoid
}

// Apply converts g from the From ellipsoid to the To ellipsoid.
func (d DatumShift) Apply(g GeodeticCoord) GeodeticCoord {
	return d.To.ToGeodetic(d.From.ToGeocentric(g))
}

// Reverse returns the shift in the opposite direction.
func (d DatumShift) Reverse() DatumShift {
	return DatumShift{From: d.To, To: d.From}
}
