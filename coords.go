package lks92

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// GeodeticCoord is a position on an ellipsoid. Lon and Lat are in degrees,
// Height is the ellipsoidal height in meters.
type GeodeticCoord struct {
	Lon    float64
	Lat    float64
	Height float64
}

// GeodeticFromLatLng builds a GeodeticCoord from an s2.LatLng and a height.
func GeodeticFromLatLng(ll s2.LatLng, height float64) GeodeticCoord {
	return GeodeticCoord{
		Lon:    ll.Lng.Degrees(),
		Lat:    ll.Lat.Degrees(),
		Height: height,
	}
}

// LatLng returns the horizontal part of g as an s2.LatLng.
func (g GeodeticCoord) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(g.Lat, g.Lon)
}

// Point returns g as an orb.Point, which is ordered [lon, lat].
func (g GeodeticCoord) Point() orb.Point {
	return orb.Point{g.Lon, g.Lat}
}

// height returns the ellipsoidal height, treating NaN as zero.
func (g GeodeticCoord) height() float64 {
	if math.IsNaN(g.Height) {
		return 0
	}
	return g.Height
}

// GeocentricCoord is an earth-centered cartesian position in meters.
type GeocentricCoord struct {
	X float64
	Y float64
	Z float64
}

// ProjectedCoord is a position on a projected plane in meters.
type ProjectedCoord struct {
	Easting  float64
	Northing float64
	Height   float64
}

// Point returns p as an orb.Point, which is ordered [easting, northing].
func (p ProjectedCoord) Point() orb.Point {
	return orb.Point{p.Easting, p.Northing}
}

// Pixel is a pixel address in the tile pyramid at some zoom level.
type Pixel struct {
	X int
	Y int
}

// Tile returns the index of the tile that contains the pixel.
func (p Pixel) Tile(tileSize int) (x, y int) {
	return floorDiv(p.X, tileSize), floorDiv(p.Y, tileSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
