package lks92

import "fmt"

// WGS84 is the ellipsoid of the geographic input and output coordinates.
var WGS84 = Ellipsoid{
	SemiMajorAxis: 6378137.0,
	SemiMinorAxis: 6356752.3142451793,
}

// GRS80 is the ellipsoid LKS92 / Latvia TM is defined on.
var GRS80 = Ellipsoid{
	SemiMajorAxis: 6378137.0,
	SemiMinorAxis: 6356752.3141403561,
}

// DefaultLKS92 is the LKS92 / Latvia TM tile projection.
var DefaultLKS92 *LKS92

func init() {
	var err error
	DefaultLKS92, err = NewLKS92()
	if err != nil {
		panic(fmt.Sprintf("error constructing LKS92 projection: %s", err))
	}
}
