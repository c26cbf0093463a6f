package lks92

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// TileAt returns the index of the tile that contains a WGS84 position.
func (p *LKS92) TileAt(lat, lng float64, zoom int) (x, y int) {
	return p.ToPixel(lat, lng, zoom).Tile(TileSize)
}

// TileProjectedBounds returns the extent of a tile in projected meters. The
// bound is empty for a zoom level outside the pyramid.
func (p *LKS92) TileProjectedBounds(x, y, zoom int) orb.Bound {
	res := p.Resolution(zoom)
	if res == 0 {
		return orb.Bound{}
	}
	size := float64(TileSize) * res
	left := float64(x)*size - OriginX
	top := OriginY - float64(y)*size
	return orb.Bound{
		Min: orb.Point{left, top - size},
		Max: orb.Point{left + size, top},
	}
}

// tileCorners returns the WGS84 positions of the corners of a tile, in ring
// order starting at the top left.
func (p *LKS92) tileCorners(x, y, zoom int) ([]orb.Point, error) {
	b := p.TileProjectedBounds(x, y, zoom)
	corners := []orb.Point{b.LeftTop(), {b.Right(), b.Top()}, b.RightBottom(), {b.Left(), b.Bottom()}}
	for i, c := range corners {
		g, err := p.Unproject(ProjectedCoord{Easting: c.X(), Northing: c.Y()})
		if err != nil {
			return nil, err
		}
		corners[i] = g.Point()
	}
	return corners, nil
}

// TileLatLngBounds returns the smallest [lon, lat] bound that holds a tile.
// The tile is not clipped to ValidLatLonBounds.
func (p *LKS92) TileLatLngBounds(x, y, zoom int) (orb.Bound, error) {
	if !validZoom(zoom) {
		return orb.Bound{}, nil
	}
	corners, err := p.tileCorners(x, y, zoom)
	if err != nil {
		return orb.Bound{}, err
	}
	b := corners[0].Bound()
	for _, c := range corners[1:] {
		b = b.Extend(c)
	}
	return b, nil
}

// TileFeature returns the outline of a tile in WGS84 as a GeoJSON polygon
// feature carrying the tile address and resolution as properties.
func (p *LKS92) TileFeature(x, y, zoom int) (*geojson.Feature, error) {
	var ring orb.Ring
	if validZoom(zoom) {
		corners, err := p.tileCorners(x, y, zoom)
		if err != nil {
			return nil, err
		}
		ring = append(orb.Ring(corners), corners[0])
	}
	f := geojson.NewFeature(orb.Polygon{ring})
	f.Properties["zoom"] = zoom
	f.Properties["x"] = x
	f.Properties["y"] = y
	f.Properties["resolution"] = p.Resolution(zoom)
	return f, nil
}
