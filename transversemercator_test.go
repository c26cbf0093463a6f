package lks92_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/lks92"
	"gonum.org/v1/gonum/floats/scalar"
)

func newLatviaTM(t *testing.T) *lks92.TransverseMercator {
	t.Helper()
	tm, err := lks92.NewTransverseMercator(lks92.GRS80, 0.41887902047863912, 0, 500000, -6000000, 0.9998)
	require.NoError(t, err)
	return tm
}

func TestTransverseMercatorCentralMeridian(t *testing.T) {
	tm := newLatviaTM(t)
	require.InDelta(t, 0.41887902047863912, tm.CentralMeridian(), 1e-16)
	require.Equal(t, lks92.GRS80, tm.Ellipsoid())

	c := tm.Forward(lks92.GeodeticCoord{Lon: 24, Lat: 56.95, Height: 12})
	require.Equal(t, 500000.0, c.Easting)
	require.Equal(t, 12.0, c.Height)
	require.InDelta(t, 313083.0462274002, c.Northing, 1e-6)

	ll := tm.Forward(lks92.GeodeticFromLatLng(s2.LatLngFromDegrees(56.95, 24), 12))
	require.InDelta(t, c.Easting, ll.Easting, 1e-6)
	require.InDelta(t, c.Northing, ll.Northing, 1e-6)

	// easting is symmetric around the central meridian
	east := tm.Forward(lks92.GeodeticCoord{Lon: 25, Lat: 57})
	west := tm.Forward(lks92.GeodeticCoord{Lon: 23, Lat: 57})
	require.InDelta(t, east.Easting-500000, 500000-west.Easting, 1e-6)
	require.InDelta(t, east.Northing, west.Northing, 1e-6)
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	tm := newLatviaTM(t)

	for lat := 55.0; lat <= 59.0; lat += 0.1 {
		for lon := 23.0; lon <= 25.0; lon += 0.1 {
			g := lks92.GeodeticCoord{Lon: lon, Lat: lat}
			got, err := tm.Inverse(tm.Forward(g))
			if err != nil {
				t.Fatalf("error converting %+v: %s", g, err)
			}
			if !scalar.EqualWithinAbs(got.Lat, lat, 1e-10) || !scalar.EqualWithinAbs(got.Lon, lon, 1e-10) {
				t.Fatalf("expected %+v, got %+v", g, got)
			}
		}
	}

	// the series loses accuracy away from the central meridian
	for lat := lks92.MinLatitude; lat <= lks92.MaxLatitude; lat += 0.05 {
		for lon := lks92.MinLongitude; lon <= lks92.MaxLongitude; lon += 0.05 {
			g := lks92.GeodeticCoord{Lon: lon, Lat: lat}
			got, err := tm.Inverse(tm.Forward(g))
			if err != nil {
				t.Fatalf("error converting %+v: %s", g, err)
			}
			if !scalar.EqualWithinAbs(got.Lat, lat, 2e-7) || !scalar.EqualWithinAbs(got.Lon, lon, 2e-7) {
				t.Fatalf("expected %+v, got %+v", g, got)
			}
		}
	}
}

func TestTransverseMercatorInverseHeight(t *testing.T) {
	tm := newLatviaTM(t)
	g, err := tm.Inverse(lks92.ProjectedCoord{Easting: 506692.5, Northing: 313088.4, Height: 42})
	require.NoError(t, err)
	require.Equal(t, 42.0, g.Height)
}

func TestTransverseMercatorPoles(t *testing.T) {
	tm := newLatviaTM(t)

	g, err := tm.Inverse(lks92.ProjectedCoord{Easting: 500000, Northing: 12e6})
	require.NoError(t, err)
	require.Equal(t, 24.0, g.Lon)
	require.Equal(t, 90.0, g.Lat)

	g, err = tm.Inverse(lks92.ProjectedCoord{Easting: 500000, Northing: -2.4e7})
	require.NoError(t, err)
	require.Equal(t, 24.0, g.Lon)
	require.Equal(t, -90.0, g.Lat)
}

func TestTransverseMercatorConvergence(t *testing.T) {
	tm := newLatviaTM(t)

	for _, northing := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := tm.Inverse(lks92.ProjectedCoord{Easting: 500000, Northing: northing})
		require.Error(t, err)
		require.True(t, errors.Is(err, lks92.ErrLatitudeConvergence))

		var convErr *lks92.ConvergenceError
		require.True(t, errors.As(err, &convErr))
		require.Equal(t, 7, convErr.Iterations)
		require.Equal(t, 500000.0, convErr.Easting)
		require.Contains(t, err.Error(), "latitude failed to converge")
	}
}

func TestNewTransverseMercatorValidation(t *testing.T) {
	tests := []struct {
		name            string
		ellipsoid       lks92.Ellipsoid
		centralMeridian float64
		originLatitude  float64
		scaleFactor     float64
		errMsg          string
	}{
		{"bad ellipsoid", lks92.Ellipsoid{}, 0, 0, 1, "semi-major axis must be greater than zero"},
		{"origin latitude", lks92.GRS80, 0, 2, 1, "origin latitude out of range"},
		{"central meridian", lks92.GRS80, -4, 0, 1, "central meridian out of range"},
		{"small scale", lks92.GRS80, 0, 0, 0.01, "scale factor out of range"},
		{"large scale", lks92.GRS80, 0, 0, 11, "scale factor out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := lks92.NewTransverseMercator(tt.ellipsoid, tt.centralMeridian, tt.originLatitude, 0, 0, tt.scaleFactor)
			require.Nil(t, tm)
			require.EqualError(t, err, tt.errMsg)
		})
	}
}
