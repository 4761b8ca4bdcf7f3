// Package location parses and validates the "lng,lat" query points
// accepted by the HTTP surface and the bulk line format.
package location

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/osmtools/adminlookup/internal/apperr"
)

// Point is a validated (lng, lat) pair in the WGS84 plane.
type Point struct {
	Lng float64
	Lat float64
}

// Parse splits s on a single comma and parses both halves as floats,
// then validates the resulting point is in range. Any failure is
// returned as an apperr.KindInputParse error.
func Parse(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, apperr.New(apperr.KindInputParse,
			fmt.Errorf("loc must be exactly two comma-separated numbers, got %q", s))
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, apperr.New(apperr.KindInputParse,
			fmt.Errorf("invalid longitude %q: %w", parts[0], err))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, apperr.New(apperr.KindInputParse,
			fmt.Errorf("invalid latitude %q: %w", parts[1], err))
	}

	p := Point{Lng: lng, Lat: lat}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// Validate reports whether p's coordinates are finite and within the
// WGS84 lng/lat ranges.
func (p Point) Validate() error {
	if math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) || p.Lng < -180 || p.Lng > 180 {
		return apperr.New(apperr.KindInputParse,
			fmt.Errorf("longitude %v out of range [-180, 180]", p.Lng))
	}
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || p.Lat < -90 || p.Lat > 90 {
		return apperr.New(apperr.KindInputParse,
			fmt.Errorf("latitude %v out of range [-90, 90]", p.Lat))
	}
	return nil
}

// ToOrb converts p into the orb.Point used by the geometry layer.
func (p Point) ToOrb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}
