package rtreeindex

import (
	"bytes"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmtools/adminlookup/internal/boundary"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	b1 := rectBoundary(t, "left", 0, 0, 0.4, 1)
	b2 := rectBoundary(t, "right", 0.6, 0, 1, 1)
	idx := Build([]*boundary.Boundary{b1, b2})

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, idx))

	reloaded, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, idx.Len(), reloaded.Len())

	for _, p := range []orb.Point{{0.2, 0.5}, {0.8, 0.5}, {1.5, 0.5}} {
		before := idx.LocateAllAtPoint(p)
		after := reloaded.LocateAllAtPoint(p)
		assert.ElementsMatch(t, namesOf(before), namesOf(after))
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("not an index file")))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF}) // version 4294967295, big-endian
	_, err := Load(&buf)
	assert.Error(t, err)
}

func namesOf(boundaries []*boundary.Boundary) []string {
	names := make([]string, len(boundaries))
	for i, b := range boundaries {
		names[i] = b.Name
	}
	return names
}
