package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// Add returns p shifted by the given degrees
func (p Point) Add(dLat, dLon float64) Point {
	return Point{Lat: p.Lat + dLat, Lon: p.Lon + dLon}
}

// LatLng converts the point to an s2.LatLng
func (p Point) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lon)
}

// IsValid reports whether both coordinates are finite and in range
func (p Point) IsValid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.LatLng().IsValid()
}

// Bounds is an axis-aligned latitude/longitude box in degrees
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Contains reports whether p lies inside the bounds, edges included
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Lerp maps fractions u, v in [0, 1) to a point inside the bounds
func (b Bounds) Lerp(u, v float64) Point {
	return Point{
		Lat: math.Min(b.MinLat+u*(b.MaxLat-b.MinLat), b.MaxLat),
		Lon: math.Min(b.MinLon+v*(b.MaxLon-b.MinLon), b.MaxLon),
	}
}
