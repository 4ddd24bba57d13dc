package cache

import (
	"testing"
	"time"

	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU(t *testing.T) {
	t.Parallel()

	_, err := NewLRU(0)
	assert.Error(t, err)

	c, err := NewLRU(1)
	require.NoError(t, err)

	_, ok := c.Get("a/b")
	assert.False(t, ok)

	first := app.CacheEntry{
		Data: map[string]app.ContributorSummary{
			"a/b": {Avatars: []string{"u1"}, Total: 3},
		},
		FetchedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	c.Add("a/b", first)

	got, ok := c.Get("a/b")
	require.True(t, ok)
	assert.Equal(t, first, got)

	second := app.CacheEntry{
		Data: map[string]app.ContributorSummary{
			"a/b": {Avatars: []string{}, Total: 0},
		},
		FetchedAt: first.FetchedAt.Add(13 * time.Hour),
	}
	c.Add("a/b", second)

	got, ok = c.Get("a/b")
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Equal(t, 1, c.Len())

	c.Add("c/d", first)
	_, ok = c.Get("a/b")
	assert.False(t, ok, "oldest entry should be evicted")
	assert.Equal(t, 1, c.Len())
}
