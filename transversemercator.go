package lks92

import (
	"errors"
	"math"
)

const (
	// maxIterations bounds the footpoint latitude iteration of Inverse.
	maxIterations = 6
	// epsLon is the convergence tolerance of the footpoint latitude, in radians.
	epsLon = 1.0e-10
)

// TransverseMercator provides conversions between geodetic coordinates
// (longitude and latitude) and Transverse Mercator projection coordinates
// (easting and northing) using the series expansions of the USGS General
// Cartographic Transformation Package. A TransverseMercator is immutable and
// may be shared between goroutines.
type TransverseMercator struct {
	ellipsoid Ellipsoid

	es  float64 // Eccentricity squared
	esp float64 // Second eccentricity squared

	// Meridional arc series coefficients
	e0, e1, e2, e3 float64
	ml0            float64 // Meridional arc at the latitude of origin

	// Transverse_Mercator projection Parameters
	centralMeridian float64 // Longitude of origin in radians
	originLatitude  float64 // Latitude of origin in radians
	falseEasting    float64 // False easting in meters
	falseNorthing   float64 // False northing in meters
	scaleFactor     float64 // Scale factor
}

// NewTransverseMercator constructs a new TransverseMercator converter.
// centralMeridian and originLatitude are in radians. Positions held as an
// s2.LatLng go through GeodeticFromLatLng before Forward.
func NewTransverseMercator(ellipsoid Ellipsoid, centralMeridian, originLatitude,
	falseEasting, falseNorthing, scaleFactor float64) (*TransverseMercator, error) {
	if err := ellipsoid.validate(); err != nil {
		return nil, err
	}
	if (originLatitude < -halfPi) || (originLatitude > halfPi) {
		return nil, errors.New("origin latitude out of range")
	}
	if (centralMeridian < -math.Pi) || (centralMeridian > twoPi) {
		return nil, errors.New("central meridian out of range")
	}

	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if (scaleFactor < minScaleFactor) || (scaleFactor > maxScaleFactor) {
		return nil, errors.New("scale factor out of range")
	}

	t := &TransverseMercator{
		ellipsoid:       ellipsoid,
		centralMeridian: centralMeridian,
		originLatitude:  originLatitude,
		falseEasting:    falseEasting,
		falseNorthing:   falseNorthing,
		scaleFactor:     scaleFactor,
	}
	t.es = ellipsoid.EccentricitySquared()
	t.esp = t.es / (1.0 - t.es)
	t.e0 = e0fn(t.es)
	t.e1 = e1fn(t.es)
	t.e2 = e2fn(t.es)
	t.e3 = e3fn(t.es)
	t.ml0 = ellipsoid.SemiMajorAxis * mlfn(t.e0, t.e1, t.e2, t.e3, originLatitude)
	return t, nil
}

// Ellipsoid returns the reference ellipsoid of the projection.
func (t *TransverseMercator) Ellipsoid() Ellipsoid {
	return t.ellipsoid
}

// CentralMeridian returns the longitude of origin in radians.
func (t *TransverseMercator) CentralMeridian() float64 {
	return t.centralMeridian
}

// Forward projects a geodetic position to easting and northing. The height
// is carried through unchanged.
func (t *TransverseMercator) Forward(g GeodeticCoord) ProjectedCoord {
	a := t.ellipsoid.SemiMajorAxis
	lon := degreesToRadians(g.Lon)
	lat := degreesToRadians(g.Lat)

	deltaLon := AdjustLongitude(lon - t.centralMeridian)
	sinPhi, cosPhi := sinCos(lat)

	al := cosPhi * deltaLon
	als := al * al
	c := t.esp * cosPhi * cosPhi
	tq := math.Tan(lat)
	tt := tq * tq
	con := 1.0 - t.es*sinPhi*sinPhi
	n := a / math.Sqrt(con)
	ml := a * mlfn(t.e0, t.e1, t.e2, t.e3, lat)

	x := t.scaleFactor*n*al*(1.0+als/6.0*(1.0-tt+c+als/20.0*
		(5.0-18.0*tt+tt*tt+72.0*c-58.0*t.esp))) + t.falseEasting

	y := t.scaleFactor*(ml-t.ml0+n*tq*(als*(0.5+als/24.0*
		(5.0-tt+9.0*c+4.0*c*c+als/30.0*(61.0-58.0*tt+tt*tt+600.0*c-330.0*t.esp))))) + t.falseNorthing

	return ProjectedCoord{Easting: x, Northing: y, Height: g.Height}
}

// Inverse converts easting and northing back to a geodetic position. It
// fails with a *ConvergenceError when the footpoint latitude does not settle
// within the iteration limit, which only happens for inputs far outside the
// projection's domain (or NaN and infinite values).
func (t *TransverseMercator) Inverse(p ProjectedCoord) (GeodeticCoord, error) {
	a := t.ellipsoid.SemiMajorAxis
	x := p.Easting - t.falseEasting
	y := p.Northing - t.falseNorthing

	con := (t.ml0 + y/t.scaleFactor) / a
	phi := con
	for i := 0; ; i++ {
		deltaPhi := ((con + t.e1*math.Sin(2.0*phi) - t.e2*math.Sin(4.0*phi) + t.e3*math.Sin(6.0*phi)) / t.e0) - phi
		phi += deltaPhi

		if math.Abs(deltaPhi) <= epsLon {
			break
		}
		if i >= maxIterations {
			return GeodeticCoord{}, &ConvergenceError{
				Easting:    p.Easting,
				Northing:   p.Northing,
				Iterations: i + 1,
			}
		}
	}

	// The series divides by cos(phi); at the poles the longitude is undefined.
	if math.Abs(phi) >= halfPi {
		return GeodeticCoord{
			Lon:    radiansToDegrees(t.centralMeridian),
			Lat:    radiansToDegrees(halfPi * sign(y)),
			Height: p.Height,
		}, nil
	}

	sinPhi, cosPhi := sinCos(phi)
	tanPhi := math.Tan(phi)
	c := t.esp * cosPhi * cosPhi
	cs := c * c
	tt := tanPhi * tanPhi
	ts := tt * tt
	con = 1.0 - t.es*sinPhi*sinPhi
	n := a / math.Sqrt(con)
	r := n * (1.0 - t.es) / con
	d := x / (n * t.scaleFactor)
	ds := d * d

	lat := phi - (n*tanPhi*ds/r)*(0.5-ds/24.0*(5.0+3.0*tt+
		10.0*c-4.0*cs-9.0*t.esp-ds/30.0*(61.0+90.0*tt+
		298.0*c+45.0*ts-252.0*t.esp-3.0*cs)))

	lon := AdjustLongitude(t.centralMeridian + (d * (1.0 - ds/6.0*(1.0+2.0*tt+
		c-ds/20.0*(5.0-2.0*c+28.0*tt-3.0*cs+8.0*t.esp+
		24.0*ts))) / cosPhi))

	return GeodeticCoord{
		Lon:    radiansToDegrees(lon),
		Lat:    radiansToDegrees(lat),
		Height: p.Height,
	}, nil
}
