package boundary

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/qedus/osmpbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdminRelation(t *testing.T) {
	levels := map[uint8]bool{8: true, 10: true}

	admin := &osmpbf.Relation{Tags: map[string]string{
		"boundary": "administrative", "admin_level": "10", "name": "Schwachhausen",
	}}
	assert.True(t, isAdminRelation(admin, levels))

	wrongLevel := &osmpbf.Relation{Tags: map[string]string{
		"boundary": "administrative", "admin_level": "6", "name": "Bremen",
	}}
	assert.False(t, isAdminRelation(wrongLevel, levels))

	notAdmin := &osmpbf.Relation{Tags: map[string]string{
		"boundary": "postal_code", "admin_level": "10", "name": "X",
	}}
	assert.False(t, isAdminRelation(notAdmin, levels))

	noName := &osmpbf.Relation{Tags: map[string]string{
		"boundary": "administrative", "admin_level": "10",
	}}
	assert.False(t, isAdminRelation(noName, levels))
}

func TestBuildBoundaryFromRelation(t *testing.T) {
	wayNodeIDs := map[int64][]int64{1: {10, 20, 30, 10}}
	nodeCoords := map[int64]orb.Point{
		10: {0, 0},
		20: {1, 0},
		30: {1, 1},
	}

	rel := &osmpbf.Relation{
		Tags: map[string]string{"admin_level": "10", "name": "Schwachhausen"},
		Members: []osmpbf.Member{
			{ID: 1, Type: osmpbf.WayType, Role: "outer"},
			{ID: 999, Type: osmpbf.NodeType, Role: "admin_centre"}, // ignored: not a way
		},
	}

	b, ok := buildBoundary(rel, wayNodeIDs, nodeCoords)
	require.True(t, ok)
	assert.Equal(t, "Schwachhausen", b.Name)
	assert.Equal(t, uint8(10), b.AdminLevel)
}
