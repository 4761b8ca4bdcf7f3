// Package rtreeindex builds and persists the R-tree of administrative
// boundaries that backs point lookups.
package rtreeindex

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/osmtools/adminlookup/internal/boundary"
)

// pointQueryEpsilon sizes the degenerate search rectangle used to turn
// a point query into the range query rtreego.SearchIntersect expects.
const pointQueryEpsilon = 1e-9

// Index wraps an rtreego.Rtree over Boundary values. The tree only
// ever holds pointers wrapped in spatialBoundary; Boundaries returns
// the unwrapped slice for callers that want the full set.
type Index struct {
	tree       *rtreego.Rtree
	boundaries []*boundary.Boundary
}

// Build indexes boundaries by sequential insertion, following the
// only tree-population path the vendored rtreego API exposes (the
// teacher never calls anything but Insert in a loop; there is no bulk
// "load" entry point to use instead).
func Build(boundaries []*boundary.Boundary) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for _, b := range boundaries {
		tree.Insert(spatialBoundary{b: b})
	}
	return &Index{tree: tree, boundaries: boundaries}
}

// LocateAllAtPoint returns every indexed boundary whose bounding box
// intersects p, pruning the search but not yet testing exact polygon
// containment — that is query.Locate's job.
func (idx *Index) LocateAllAtPoint(p orb.Point) []*boundary.Boundary {
	rect, err := rtreego.NewRect(
		rtreego.Point{p[0] - pointQueryEpsilon, p[1] - pointQueryEpsilon},
		[]float64{2 * pointQueryEpsilon, 2 * pointQueryEpsilon},
	)
	if err != nil {
		return nil
	}

	results := idx.tree.SearchIntersect(rect)
	candidates := make([]*boundary.Boundary, 0, len(results))
	for _, r := range results {
		if sb, ok := r.(spatialBoundary); ok {
			candidates = append(candidates, sb.b)
		}
	}
	return candidates
}

// Len returns the number of indexed boundaries.
func (idx *Index) Len() int {
	return len(idx.boundaries)
}

// Boundaries returns every boundary the index holds, in insertion
// order.
func (idx *Index) Boundaries() []*boundary.Boundary {
	return idx.boundaries
}
