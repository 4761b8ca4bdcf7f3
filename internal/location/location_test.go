package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmtools/adminlookup/internal/apperr"
)

func TestParse(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		p, err := Parse("8.822,53.089")
		require.NoError(t, err)
		assert.Equal(t, Point{Lng: 8.822, Lat: 53.089}, p)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		p, err := Parse(" 8.822 , 53.089 ")
		require.NoError(t, err)
		assert.Equal(t, Point{Lng: 8.822, Lat: 53.089}, p)
	})

	cases := []string{
		"",
		",1",
		"1",
		"1,2,3",
		"abc,1",
		"1,abc",
		"200,1",
		"1,200",
		"-200,1",
	}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindInputParse))
		})
	}
}

func TestToOrb(t *testing.T) {
	p := Point{Lng: 1.5, Lat: 2.5}
	op := p.ToOrb()
	assert.Equal(t, 1.5, op[0])
	assert.Equal(t, 2.5, op[1])
}
