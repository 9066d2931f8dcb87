package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcda/cache"
)

func TestMemoryCache_MissThenHit(t *testing.T) {
	c := cache.NewMemory()

	_, ok, err := c.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set("k", []string{"Z", "W"}))

	got, ok, err := c.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Z", "W"}, got)
}

func TestMemoryCache_SetOverwrites(t *testing.T) {
	c := cache.NewMemory()
	require.NoError(t, c.Set("k", []string{"A"}))
	require.NoError(t, c.Set("k", []string{"B", "C"}))

	got, ok, err := c.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"B", "C"}, got)
}

// TestMemoryCache_ReturnsDefensiveCopy checks that mutating a returned
// slice cannot corrupt the cached entry.
func TestMemoryCache_ReturnsDefensiveCopy(t *testing.T) {
	c := cache.NewMemory()
	require.NoError(t, c.Set("k", []string{"A", "B"}))

	got, _, _ := c.Get("k")
	got[0] = "MUTATED"

	again, _, _ := c.Get("k")
	assert.Equal(t, "A", again[0])
}
