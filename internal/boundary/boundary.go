// Package boundary holds the administrative Boundary record and the
// OSM-relation-to-multipolygon reconstruction it is built from.
package boundary

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrEmptyGeometry is returned by New when the reconstructed
// multipolygon has no rings, or its bounding box cannot be computed.
var ErrEmptyGeometry = errors.New("boundary: empty geometry")

// ErrMissingName is returned by New when name is empty.
var ErrMissingName = errors.New("boundary: missing name")

// Boundary is one administrative region: a name, an admin level, a
// multipolygon over planar (lng, lat) coordinates, and its
// precomputed bounding box and bbox area. Immutable once constructed.
type Boundary struct {
	Name       string
	AdminLevel uint8
	Geometry   orb.MultiPolygon
	BBox       orb.Bound
	Area       float64
}

// New builds a Boundary from a reconstructed multipolygon. It fails
// if the geometry is empty or the name is blank — the same soft
// failures that make a relation get skipped during the build,
// surfaced here as hard errors so the caller decides whether to skip
// or propagate.
func New(mp orb.MultiPolygon, name string, adminLevel uint8) (*Boundary, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if len(mp) == 0 {
		return nil, ErrEmptyGeometry
	}

	bound := mp.Bound()
	if bound.IsEmpty() {
		return nil, ErrEmptyGeometry
	}

	area := (bound.Max[0] - bound.Min[0]) * (bound.Max[1] - bound.Min[1])

	return &Boundary{
		Name:       name,
		AdminLevel: adminLevel,
		Geometry:   mp,
		BBox:       bound,
		Area:       area,
	}, nil
}

// Contains reports whether p lies inside the boundary's multipolygon
// via an even-odd ring test. A point exactly on an edge is not
// guaranteed either way — do not assert edge behavior.
func (b *Boundary) Contains(p orb.Point) bool {
	for _, poly := range b.Geometry {
		if polygonContains(poly, p) {
			return true
		}
	}
	return false
}

func polygonContains(poly orb.Polygon, p orb.Point) bool {
	if len(poly) == 0 {
		return false
	}
	if !planar.RingContains(poly[0], p) {
		return false
	}
	for _, hole := range poly[1:] {
		if planar.RingContains(hole, p) {
			return false
		}
	}
	return true
}
