// Package query implements point-in-boundary lookup: an R-tree prune
// followed by exact polygon containment.
package query

import (
	"github.com/osmtools/adminlookup/internal/boundary"
	"github.com/osmtools/adminlookup/internal/location"
	"github.com/osmtools/adminlookup/internal/rtreeindex"
)

// Locate returns every boundary containing p, pruned by idx's R-tree
// and confirmed by exact ring containment. Order follows the R-tree's
// traversal order, not any notion of administrative nesting: callers
// that want outermost-first must sort by AdminLevel or Area
// themselves.
func Locate(idx *rtreeindex.Index, p location.Point) []*boundary.Boundary {
	op := p.ToOrb()
	candidates := idx.LocateAllAtPoint(op)

	matches := make([]*boundary.Boundary, 0, len(candidates))
	for _, c := range candidates {
		if c.Contains(op) {
			matches = append(matches, c)
		}
	}
	return matches
}

// FlatScan tests every boundary directly, bypassing the R-tree. It is
// the correctness oracle Locate's results are checked against: for
// any point, the two must agree on the set of containing boundaries
// regardless of how the R-tree prunes.
func FlatScan(boundaries []*boundary.Boundary, p location.Point) []*boundary.Boundary {
	op := p.ToOrb()
	matches := make([]*boundary.Boundary, 0)
	for _, b := range boundaries {
		if b.Contains(op) {
			matches = append(matches, b)
		}
	}
	return matches
}
