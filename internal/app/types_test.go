package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContributorsPageDocument(t *testing.T) {
	page := ContributorsPage{
		Revalidate: time.Hour,
		FetchedAt:  time.Date(2026, 1, 2, 4, 4, 5, 0, time.FixedZone("CET", 3600)),
	}

	doc := page.Document()
	assert.NotNil(t, doc.Repositories)
	assert.Equal(t, 3600, doc.RevalidateSeconds)
	assert.Equal(t, time.UTC, doc.FetchedAt.Location())
	assert.Equal(t, 3, doc.FetchedAt.Hour())
}

func TestContributorsPageCacheControl(t *testing.T) {
	tests := []struct {
		revalidate time.Duration
		want       string
	}{
		{time.Hour, "public, max-age=0, s-maxage=3600, stale-while-revalidate"},
		{24 * time.Hour, "public, max-age=0, s-maxage=86400, stale-while-revalidate"},
	}
	for _, tt := range tests {
		t.Run(tt.revalidate.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ContributorsPage{Revalidate: tt.revalidate}.CacheControl())
		})
	}
}
