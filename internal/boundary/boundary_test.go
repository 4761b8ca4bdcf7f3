package boundary

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectBoundary(t *testing.T, name string, minX, minY, maxX, maxY float64) *Boundary {
	t.Helper()
	ring := orb.Ring{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}
	mp := orb.MultiPolygon{orb.Polygon{ring}}
	b, err := New(mp, name, 10)
	require.NoError(t, err)
	return b
}

func TestNewRejectsEmptyNameOrGeometry(t *testing.T) {
	ring := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	mp := orb.MultiPolygon{orb.Polygon{ring}}

	_, err := New(mp, "", 10)
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = New(orb.MultiPolygon{}, "name", 10)
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestContainsRectangle(t *testing.T) {
	b := rectBoundary(t, "box", 0, 0, 1, 1)

	assert.True(t, b.Contains(orb.Point{0.5, 0.5}))
	assert.False(t, b.Contains(orb.Point{1.5, 0.5}))
}

func TestContainsHoleExcludesInterior(t *testing.T) {
	outer := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	hole := orb.Ring{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}}
	mp := orb.MultiPolygon{orb.Polygon{outer, hole}}
	b, err := New(mp, "donut", 8)
	require.NoError(t, err)

	assert.True(t, b.Contains(orb.Point{1, 1}))
	assert.False(t, b.Contains(orb.Point{5, 5}))
}

// synthetic fixture: left(0,0)-(0.4,1), small-left(0,0)-(0.3,1),
// right(0.6,0)-(1,1), middle(0.25,0)-(0.75,1), huge(0,0)-(1,1).
func syntheticFixture(t *testing.T) []*Boundary {
	t.Helper()
	return []*Boundary{
		rectBoundary(t, "left", 0, 0, 0.4, 1),
		rectBoundary(t, "small-left", 0, 0, 0.3, 1),
		rectBoundary(t, "right", 0.6, 0, 1, 1),
		rectBoundary(t, "middle", 0.25, 0, 0.75, 1),
		rectBoundary(t, "huge", 0, 0, 1, 1),
	}
}

func TestSyntheticFixtureContainment(t *testing.T) {
	fixture := syntheticFixture(t)

	namesAt := func(p orb.Point) []string {
		var names []string
		for _, b := range fixture {
			if b.Contains(p) {
				names = append(names, b.Name)
			}
		}
		return names
	}

	assert.ElementsMatch(t, []string{"huge", "middle", "small-left", "left"}, namesAt(orb.Point{0.3, 0.2}))
	assert.ElementsMatch(t, []string{"huge", "middle"}, namesAt(orb.Point{0.5, 0.5}))
	assert.ElementsMatch(t, []string{"huge", "right"}, namesAt(orb.Point{0.8, 0.5}))
	assert.Empty(t, namesAt(orb.Point{1.1, 0.5}))
}
