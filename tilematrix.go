package lks92

// TileMatrix describes one level of the LKS92 tile pyramid. MinTileX..MaxTileY
// are the tile indexes that cover the published extent at that level.
type TileMatrix struct {
	Level      int     `yaml:"level" json:"level"`
	Resolution float64 `yaml:"resolution" json:"resolution"` // meters per pixel
	Scale      float64 `yaml:"scale" json:"scale"`           // map scale denominator
	MinTileX   int     `yaml:"minTileX" json:"minTileX"`
	MinTileY   int     `yaml:"minTileY" json:"minTileY"`
	MaxTileX   int     `yaml:"maxTileX" json:"maxTileX"`
	MaxTileY   int     `yaml:"maxTileY" json:"maxTileY"`
}

const (
	minZoom = 0
	maxZoom = 11
)

type tileIndex struct {
	x, y int
}

var resolutions = [maxZoom + 1]float64{
	1587.50317500635,
	793.751587503175,
	529.167725002117,
	264.583862501058,
	132.291931250529,
	52.9167725002117,
	26.4583862501058,
	13.2291931250529,
	6.61459656252646,
	2.64583862501058,
	1.32291931250529,
	0.529167725002117,
}

var scales = [maxZoom + 1]float64{
	6000000,
	3000000,
	2000000,
	1000000,
	500000,
	200000,
	100000,
	50000,
	25000,
	10000,
	5000,
	2000,
}

var minTiles = [maxZoom + 1]tileIndex{
	{13, 8},
	{26, 17},
	{39, 26},
	{79, 52},
	{159, 105},
	{399, 262},
	{798, 525},
	{1597, 1050},
	{3195, 2101},
	{7989, 5254},
	{15978, 10509},
	{39945, 26273},
}

var maxTiles = [maxZoom + 1]tileIndex{
	{14, 9},
	{28, 18},
	{43, 28},
	{86, 56},
	{173, 112},
	{434, 282},
	{868, 564},
	{1737, 1129},
	{3474, 2258},
	{8686, 5647},
	{17372, 11294},
	{43430, 28236},
}

func validZoom(zoom int) bool {
	return zoom >= minZoom && zoom <= maxZoom
}

// tileResolution returns the ground resolution in meters per pixel, or 0
// when the zoom level is not part of the pyramid.
func tileResolution(zoom int) float64 {
	if !validZoom(zoom) {
		return 0
	}
	return resolutions[zoom]
}

func tileScale(zoom int) float64 {
	if !validZoom(zoom) {
		return 0
	}
	return scales[zoom]
}

func tileMin(zoom int) tileIndex {
	if !validZoom(zoom) {
		return tileIndex{}
	}
	return minTiles[zoom]
}

func tileMax(zoom int) tileIndex {
	if !validZoom(zoom) {
		return tileIndex{}
	}
	return maxTiles[zoom]
}

func tileMatrix(zoom int) (TileMatrix, bool) {
	if !validZoom(zoom) {
		return TileMatrix{}, false
	}
	lo, hi := minTiles[zoom], maxTiles[zoom]
	return TileMatrix{
		Level:      zoom,
		Resolution: resolutions[zoom],
		Scale:      scales[zoom],
		MinTileX:   lo.x,
		MinTileY:   lo.y,
		MaxTileX:   hi.x,
		MaxTileY:   hi.y,
	}, true
}
