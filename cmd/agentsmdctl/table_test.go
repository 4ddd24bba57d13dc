package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributorsRows(t *testing.T) {
	contributors := app.ContributorsPage{
		Repositories: map[string]app.ContributorSummary{
			"openai/codex":    {Avatars: []string{"a", "b", "c"}, Total: 1234},
			"PlutoLang/Pluto": {Avatars: []string{}, Total: 0},
			"apache/airflow":  {Avatars: []string{"a"}, Total: 1},
		},
		Degraded: map[string]bool{"PlutoLang/Pluto": true},
	}

	got := contributorsRows(contributors, false)
	assert.Equal(t, [][]string{
		{"apache/airflow", "1", "1", "ok"},
		{"openai/codex", "3", "1,234", "ok"},
		{"PlutoLang/Pluto", "0", "0", "degraded"},
	}, got)
}

func TestPrintContributors(t *testing.T) {
	contributors := app.ContributorsPage{
		Repositories: map[string]app.ContributorSummary{
			"openai/codex": {Avatars: []string{"a"}, Total: 325},
		},
		Revalidate: time.Hour,
		FetchedAt:  time.Now().Add(-2 * time.Hour),
		FromCache:  true,
	}

	var buf bytes.Buffer
	require.NoError(t, printContributors(&buf, contributors, false))

	out := buf.String()
	assert.Contains(t, out, "openai/codex")
	assert.Contains(t, out, "325")
	assert.Contains(t, out, "cached 2 hours ago, revalidate in 1h0m0s")
}
