package boundary

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// relationMember is the subset of an osmpbf relation member this
// package needs: a way ID and its role ("outer"/"inner"), already
// resolved from osmpbf.Member by the caller.
type relationMember struct {
	wayID int64
	role  string
}

// buildMultiPolygon assembles a multipolygon from a relation's member
// ways, following the outer/inner role convention OSM administrative
// boundary relations use. wayNodeIDs maps a way ID to its ordered node
// IDs; nodeCoords maps a node ID to its resolved (lng, lat).
//
// It returns ok=false when the ring topology is broken: a way is
// missing from the map, a node is missing, or a chain of outer way
// segments never closes into a ring. If the inner segments fail to
// close, all holes are dropped and the outer rings are still returned.
func buildMultiPolygon(members []relationMember, wayNodeIDs map[int64][]int64, nodeCoords map[int64]orb.Point) (orb.MultiPolygon, bool) {
	var outerSegs, innerSegs [][]orb.Point

	for _, m := range members {
		nodeIDs, ok := wayNodeIDs[m.wayID]
		if !ok {
			return nil, false
		}
		points := make([]orb.Point, 0, len(nodeIDs))
		for _, nodeID := range nodeIDs {
			p, ok := nodeCoords[nodeID]
			if !ok {
				return nil, false
			}
			points = append(points, p)
		}
		if len(points) < 2 {
			return nil, false
		}

		switch m.role {
		case "outer":
			outerSegs = append(outerSegs, points)
		case "inner":
			innerSegs = append(innerSegs, points)
		default:
			// Unrecognized role (or none): ignore the member rather than
			// fail the whole relation, mirroring the upstream library's
			// leniency toward tagging noise on secondary members.
		}
	}

	outerRings, ok := assembleRings(outerSegs)
	if !ok || len(outerRings) == 0 {
		return nil, false
	}

	innerRings, ok := assembleRings(innerSegs)
	if !ok {
		// Hole topology is broken but the outer shell is sound; drop the
		// holes rather than fail the whole boundary.
		innerRings = nil
	}

	polygons := make([]orb.Polygon, len(outerRings))
	for i, outer := range outerRings {
		polygons[i] = orb.Polygon{outer}
	}

	for _, inner := range innerRings {
		for i, outer := range outerRings {
			if ringContainsRing(outer, inner) {
				polygons[i] = append(polygons[i], inner)
				break
			}
		}
		// An inner ring matching no outer ring is orphaned tagging noise;
		// drop it rather than fail reconstruction.
	}

	return orb.MultiPolygon(polygons), true
}

// assembleRings stitches way segments (point chains, not necessarily
// closed or oriented consistently) into closed rings by repeatedly
// extending an open chain with whichever remaining segment shares an
// endpoint, reversing it if needed. It fails if any segment is left
// over that cannot close a ring.
func assembleRings(segments [][]orb.Point) ([]orb.Ring, bool) {
	used := make([]bool, len(segments))
	remaining := len(segments)
	var rings []orb.Ring

	for remaining > 0 {
		start := -1
		for i, u := range used {
			if !u {
				start = i
				break
			}
		}
		if start == -1 {
			break
		}
		used[start] = true
		remaining--

		ring := append(orb.Ring{}, segments[start]...)

		for !ringClosed(ring) {
			last := ring[len(ring)-1]
			extended := false
			for i, seg := range segments {
				if used[i] || len(seg) == 0 {
					continue
				}
				switch {
				case seg[0] == last:
					ring = append(ring, seg[1:]...)
				case seg[len(seg)-1] == last:
					ring = append(ring, reversed(seg)[1:]...)
				default:
					continue
				}
				used[i] = true
				remaining--
				extended = true
				break
			}
			if !extended {
				return nil, false
			}
		}

		if len(ring) < 4 {
			return nil, false
		}
		rings = append(rings, ring)
	}

	return rings, true
}

func ringClosed(ring orb.Ring) bool {
	return len(ring) > 1 && ring[0] == ring[len(ring)-1]
}

func reversed(points []orb.Point) []orb.Point {
	out := make([]orb.Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// ringContainsRing reports whether outer's interior contains inner by
// testing a single vertex of inner — sufficient once topology is
// known-disjoint, which is the case for well-formed OSM multipolygon
// relations.
func ringContainsRing(outer, inner orb.Ring) bool {
	if len(inner) == 0 {
		return false
	}
	return planar.RingContains(outer, inner[0])
}
