package bulkio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitterFeedWithinOneChunk(t *testing.T) {
	var s Splitter
	lines := s.Feed([]byte("a,1,1\nb,2,2\n"))
	assert.Equal(t, []string{"a,1,1", "b,2,2"}, lines)

	tail, ok := s.Flush()
	assert.False(t, ok)
	assert.Empty(t, tail)
}

func TestSplitterHoldsPartialLineAcrossChunks(t *testing.T) {
	var s Splitter

	lines := s.Feed([]byte("a,1,1\nb,2"))
	assert.Equal(t, []string{"a,1,1"}, lines)

	lines = s.Feed([]byte(",2\nc,3,3\n"))
	assert.Equal(t, []string{"b,2,2", "c,3,3"}, lines)
}

func TestSplitterFlushesTrailingPartialLine(t *testing.T) {
	var s Splitter

	lines := s.Feed([]byte("a,1,1\nb,2,2"))
	assert.Equal(t, []string{"a,1,1"}, lines)

	tail, ok := s.Flush()
	assert.True(t, ok)
	assert.Equal(t, "b,2,2", tail)
}

func TestSplitterEmptyChunkYieldsNothing(t *testing.T) {
	var s Splitter
	assert.Nil(t, s.Feed(nil))
	tail, ok := s.Flush()
	assert.False(t, ok)
	assert.Empty(t, tail)
}
