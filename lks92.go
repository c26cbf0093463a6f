package lks92

import (
	"math"

	"github.com/paulmach/orb"
)

// Valid geographic domain of the tile pyramid, in degrees. Coordinates
// outside are clamped to it.
const (
	MinLatitude  = 55.55
	MaxLatitude  = 58.58
	MinLongitude = 20.22
	MaxLongitude = 28.28
)

// Tiling scheme constants. The pyramid origin is (-OriginX, OriginY) in
// projected meters.
const (
	OriginX  = 5120900.0
	OriginY  = 3998100.0
	TileSize = 256
)

// EPSG code of LKS92 / Latvia TM.
const EPSG = 3059

// LKS92 parameters: Transverse Mercator on GRS80 with the central meridian
// at 24 degrees east.
const (
	scaleFactor     = 0.9998
	centralMeridian = 0.41887902047863912 // 24 degrees in radians
	originLatitude  = 0.0
	falseEasting    = 500000.0
	falseNorthing   = -6000000.0
)

var fullExtent = orb.Bound{
	Min: orb.Point{290284.5745, 159644.05},
	Max: orb.Point{785045.1155, 452176.95},
}

// Projection converts between a projected coordinate reference system and
// WGS84 longitude/latitude in degrees.
type Projection interface {
	ToWGS84(easting, northing float64) (lon, lat float64, err error)
	FromWGS84(lon, lat float64) (easting, northing float64)
	EPSG() int
}

// TileProjection maps geographic coordinates onto a fixed tile pyramid.
type TileProjection interface {
	ToPixel(lat, lng float64, zoom int) Pixel
	ToLatLng(x, y, zoom int) (lat, lng float64, err error)
	Resolution(zoom int) float64
	TileBoundsMin(zoom int) (x, y int)
	TileBoundsMax(zoom int) (x, y int)
	TileSize() (width, height int)
	ValidLatLonBounds() orb.Bound
}

var (
	_ Projection     = (*LKS92)(nil)
	_ TileProjection = (*LKS92)(nil)
)

// LKS92 is the LKS92 / Latvia TM tile projection. Geographic input and output
// is on WGS84; the projection itself is defined on GRS80, and every
// conversion passes through earth-centered coordinates to move between the
// two ellipsoids. An LKS92 holds no mutable state.
type LKS92 struct {
	shift DatumShift // WGS84 -> GRS80
	tm    *TransverseMercator
}

// NewLKS92 constructs the projection from its fixed parameters.
func NewLKS92() (*LKS92, error) {
	tm, err := NewTransverseMercator(GRS80, centralMeridian, originLatitude,
		falseEasting, falseNorthing, scaleFactor)
	if err != nil {
		return nil, err
	}
	return &LKS92{
		shift: DatumShift{From: WGS84, To: GRS80},
		tm:    tm,
	}, nil
}

// EPSG returns 3059.
func (p *LKS92) EPSG() int { return EPSG }

// Axis returns the semi-major axis of the projection ellipsoid.
func (p *LKS92) Axis() float64 { return p.tm.Ellipsoid().SemiMajorAxis }

// Flattening returns the flattening of the projection ellipsoid.
func (p *LKS92) Flattening() float64 { return p.tm.Ellipsoid().Flattening() }

// Project converts a WGS84 geodetic position to LKS92 projected coordinates.
// The input is not clipped to the valid domain.
func (p *LKS92) Project(g GeodeticCoord) ProjectedCoord {
	return p.tm.Forward(p.shift.Apply(g))
}

// Unproject converts LKS92 projected coordinates to a WGS84 geodetic position.
func (p *LKS92) Unproject(c ProjectedCoord) (GeodeticCoord, error) {
	g, err := p.tm.Inverse(c)
	if err != nil {
		return GeodeticCoord{}, err
	}
	return p.shift.Reverse().Apply(g), nil
}

// FromWGS84 converts WGS84 longitude/latitude in degrees to easting and northing.
func (p *LKS92) FromWGS84(lon, lat float64) (easting, northing float64) {
	c := p.Project(GeodeticCoord{Lon: lon, Lat: lat})
	return c.Easting, c.Northing
}

// ToWGS84 converts easting and northing to WGS84 longitude/latitude in degrees.
func (p *LKS92) ToWGS84(easting, northing float64) (lon, lat float64, err error) {
	g, err := p.Unproject(ProjectedCoord{Easting: easting, Northing: northing})
	if err != nil {
		return 0, 0, err
	}
	return g.Lon, g.Lat, nil
}

// ToPixel returns the pixel that contains the given WGS84 position at the
// zoom level. The position is clamped to ValidLatLonBounds first. A zoom
// level outside the pyramid yields the zero Pixel.
func (p *LKS92) ToPixel(lat, lng float64, zoom int) Pixel {
	if !validZoom(zoom) {
		return Pixel{}
	}
	lat = clip(lat, MinLatitude, MaxLatitude)
	lng = clip(lng, MinLongitude, MaxLongitude)

	c := p.Project(GeodeticCoord{Lon: lng, Lat: lat})
	res := p.Resolution(zoom)
	return Pixel{
		X: int(math.Floor((c.Easting + OriginX) / res)),
		Y: int(math.Floor((OriginY - c.Northing) / res)),
	}
}

// ToLatLng returns the WGS84 position of the top left corner of a pixel,
// clamped to ValidLatLonBounds. A zoom level outside the pyramid yields
// (0, 0) and no error.
func (p *LKS92) ToLatLng(x, y, zoom int) (lat, lng float64, err error) {
	if !validZoom(zoom) {
		return 0, 0, nil
	}
	res := p.Resolution(zoom)
	c := ProjectedCoord{
		Easting:  float64(x)*res - OriginX,
		Northing: -(float64(y) * res) + OriginY,
	}
	g, err := p.Unproject(c)
	if err != nil {
		return 0, 0, err
	}
	return clip(g.Lat, MinLatitude, MaxLatitude), clip(g.Lon, MinLongitude, MaxLongitude), nil
}

// Resolution returns the ground resolution in meters per pixel, or 0 for a
// zoom level outside the pyramid.
func (p *LKS92) Resolution(zoom int) float64 {
	return tileResolution(zoom)
}

// GroundResolution returns the resolution at a latitude. The pyramid is
// defined on the projected plane, so the latitude does not matter.
func (p *LKS92) GroundResolution(zoom int, lat float64) float64 {
	return tileResolution(zoom)
}

// Scale returns the map scale denominator of a zoom level, or 0.
func (p *LKS92) Scale(zoom int) float64 {
	return tileScale(zoom)
}

// TileBoundsMin returns the smallest tile index at a zoom level, or (0, 0).
func (p *LKS92) TileBoundsMin(zoom int) (x, y int) {
	t := tileMin(zoom)
	return t.x, t.y
}

// TileBoundsMax returns the largest tile index at a zoom level, or (0, 0).
func (p *LKS92) TileBoundsMax(zoom int) (x, y int) {
	t := tileMax(zoom)
	return t.x, t.y
}

// TileMatrix returns the description of one zoom level.
func (p *LKS92) TileMatrix(zoom int) (TileMatrix, bool) {
	return tileMatrix(zoom)
}

// TileMatrixSet returns every level of the pyramid, coarsest first.
func (p *LKS92) TileMatrixSet() []TileMatrix {
	set := make([]TileMatrix, 0, maxZoom-minZoom+1)
	for z := minZoom; z <= maxZoom; z++ {
		m, _ := tileMatrix(z)
		set = append(set, m)
	}
	return set
}

// ZoomRange returns the lowest and highest zoom levels of the pyramid.
func (p *LKS92) ZoomRange() (lowest, highest int) {
	return minZoom, maxZoom
}

// TileSize returns the tile dimensions in pixels.
func (p *LKS92) TileSize() (width, height int) {
	return TileSize, TileSize
}

// ValidLatLonBounds returns the geographic domain as [lon, lat] points.
func (p *LKS92) ValidLatLonBounds() orb.Bound {
	return orb.Bound{
		Min: orb.Point{MinLongitude, MinLatitude},
		Max: orb.Point{MaxLongitude, MaxLatitude},
	}
}

// FullExtent returns the published extent of the map data in projected meters.
func (p *LKS92) FullExtent() orb.Bound {
	return fullExtent
}
