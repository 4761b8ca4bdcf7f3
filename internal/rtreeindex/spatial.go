package rtreeindex

import (
	"github.com/dhconnelly/rtreego"

	"github.com/osmtools/adminlookup/internal/boundary"
)

// minRectLength is the side length a degenerate bbox axis is padded
// to, since rtreego.NewRect rejects non-positive lengths. A boundary
// whose bbox is degenerate on one axis (a single meridian or
// parallel, vanishingly unlikely but not impossible for slivers) gets
// padded out to this so indexing never fails.
const minRectLength = 1e-9

// spatialBoundary adapts a *boundary.Boundary to rtreego.Spatial,
// following the same orb.Bound-to-rtreego.Rect conversion the teacher
// uses for zone indexing.
type spatialBoundary struct {
	b *boundary.Boundary
}

func (s spatialBoundary) Bounds() rtreego.Rect {
	minX, minY := s.b.BBox.Min[0], s.b.BBox.Min[1]
	maxX, maxY := s.b.BBox.Max[0], s.b.BBox.Max[1]

	width := maxX - minX
	if width < minRectLength {
		width = minRectLength
	}
	height := maxY - minY
	if height < minRectLength {
		height = minRectLength
	}

	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{width, height})
	if err != nil {
		// Both side lengths are clamped to minRectLength above, so
		// NewRect's only failure mode (non-positive lengths) cannot
		// occur; panic rather than silently return a zero Rect.
		panic(err)
	}
	return rect
}
