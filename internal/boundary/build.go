package boundary

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/qedus/osmpbf"

	"github.com/osmtools/adminlookup/internal/apperr"
)

// BuildFromPBF decodes an OSM PBF extract in three passes — nodes,
// ways, then administrative relations — and reconstructs one Boundary
// per relation at an admissible admin level. File-open and decode
// failures are fatal (KindPbfIO); individual relation reconstruction
// failures are silently skipped rather than failing the whole build.
func BuildFromPBF(path string, adminLevels []uint8) ([]*Boundary, error) {
	levels := make(map[uint8]bool, len(adminLevels))
	for _, l := range adminLevels {
		levels[l] = true
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.New(apperr.KindPbfIO, fmt.Errorf("opening pbf: %w", err))
	}
	defer f.Close()

	nodeCoords := make(map[int64]orb.Point)
	if err := decodePBF(f, func(obj interface{}) {
		if node, ok := obj.(*osmpbf.Node); ok {
			nodeCoords[node.ID] = orb.Point{node.Lon, node.Lat}
		}
	}); err != nil {
		return nil, apperr.New(apperr.KindPbfIO, fmt.Errorf("decoding nodes: %w", err))
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, apperr.New(apperr.KindPbfIO, fmt.Errorf("rewinding pbf: %w", err))
	}
	wayNodeIDs := make(map[int64][]int64)
	if err := decodePBF(f, func(obj interface{}) {
		if way, ok := obj.(*osmpbf.Way); ok {
			wayNodeIDs[way.ID] = way.NodeIDs
		}
	}); err != nil {
		return nil, apperr.New(apperr.KindPbfIO, fmt.Errorf("decoding ways: %w", err))
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, apperr.New(apperr.KindPbfIO, fmt.Errorf("rewinding pbf: %w", err))
	}
	var relations []*osmpbf.Relation
	if err := decodePBF(f, func(obj interface{}) {
		if rel, ok := obj.(*osmpbf.Relation); ok && isAdminRelation(rel, levels) {
			relations = append(relations, rel)
		}
	}); err != nil {
		return nil, apperr.New(apperr.KindPbfIO, fmt.Errorf("decoding relations: %w", err))
	}

	boundaries := make([]*Boundary, 0, len(relations))
	for _, rel := range relations {
		b, ok := buildBoundary(rel, wayNodeIDs, nodeCoords)
		if !ok {
			continue
		}
		boundaries = append(boundaries, b)
	}
	return boundaries, nil
}

func decodePBF(f *os.File, visit func(obj interface{})) error {
	decoder := osmpbf.NewDecoder(f)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)
	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}
	for {
		obj, err := decoder.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		visit(obj)
	}
}

func isAdminRelation(rel *osmpbf.Relation, levels map[uint8]bool) bool {
	if rel.Tags["boundary"] != "administrative" {
		return false
	}
	if rel.Tags["name"] == "" {
		return false
	}
	level, err := strconv.ParseUint(rel.Tags["admin_level"], 10, 8)
	if err != nil {
		return false
	}
	return levels[uint8(level)]
}

func buildBoundary(rel *osmpbf.Relation, wayNodeIDs map[int64][]int64, nodeCoords map[int64]orb.Point) (*Boundary, bool) {
	members := make([]relationMember, 0, len(rel.Members))
	for _, m := range rel.Members {
		if m.Type != osmpbf.WayType {
			continue
		}
		members = append(members, relationMember{wayID: m.ID, role: m.Role})
	}

	mp, ok := buildMultiPolygon(members, wayNodeIDs, nodeCoords)
	if !ok {
		return nil, false
	}

	adminLevel, err := strconv.ParseUint(rel.Tags["admin_level"], 10, 8)
	if err != nil {
		return nil, false
	}

	b, err := New(mp, rel.Tags["name"], uint8(adminLevel))
	if err != nil {
		return nil, false
	}
	return b, true
}
