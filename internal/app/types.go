package app

import (
	"fmt"
	"strings"
	"time"
)

// DefaultRepositories are the example repositories shown on the landing page.
var DefaultRepositories = []Repository{
	{Owner: "openai", Name: "codex"},
	{Owner: "apache", Name: "airflow"},
	{Owner: "temporalio", Name: "sdk-java"},
	{Owner: "PlutoLang", Name: "Pluto"},
}

// Repository entity
type Repository struct {
	Owner string
	Name  string
}

// String returns repository identifier in owner/name form.
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepository parses owner/name identifier.
func ParseRepository(s string) (Repository, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, InvalidRequestError("repository must be in owner/name form: " + s)
	}

	return Repository{
		Owner: parts[0],
		Name:  parts[1],
	}, nil
}

// ParseRepositories parses list of owner/name identifiers.
func ParseRepositories(ss []string) ([]Repository, error) {
	repos := make([]Repository, 0, len(ss))
	for _, s := range ss {
		r, err := ParseRepository(s)
		if err != nil {
			return nil, err
		}
		repos = append(repos, r)
	}

	return repos, nil
}

// ContributorSummary entity
type ContributorSummary struct {
	Avatars []string `json:"avatars"`
	Total   int      `json:"total"`
}

// RepositoryResult is the outcome of fetching one repository's summary.
// Degraded results carry the error that caused the fallback.
type RepositoryResult struct {
	Repository Repository
	Summary    ContributorSummary
	Degraded   bool
	Err        error
}

// CacheEntry holds summaries of all repositories fetched in one cycle.
type CacheEntry struct {
	Data      map[string]ContributorSummary
	// Degraded holds identifiers of repositories whose summary is a fallback.
	Degraded  map[string]bool
	FetchedAt time.Time
}

// ContributorsPage is the data embedded into the landing page.
type ContributorsPage struct {
	// Repositories maps owner/name identifier to its summary.
	Repositories map[string]ContributorSummary

	// Results are filled only when data was fetched in this call.
	Results []RepositoryResult

	// Degraded marks repositories whose summary is a fallback. Filled on cache hit too.
	Degraded map[string]bool

	// Revalidate tells how long the generated page may be served.
	Revalidate time.Duration

	FetchedAt time.Time
	FromCache bool
}

// ContributorsDocument is the json representation of ContributorsPage.
type ContributorsDocument struct {
	Repositories      map[string]ContributorSummary `json:"repositories"`
	RevalidateSeconds int                           `json:"revalidateSeconds"`
	FetchedAt         time.Time                     `json:"fetchedAt"`
}

// Document returns json representation of the page. Fetch time is in UTC.
func (p ContributorsPage) Document() ContributorsDocument {
	repos := p.Repositories
	if repos == nil {
		repos = map[string]ContributorSummary{}
	}

	return ContributorsDocument{
		Repositories:      repos,
		RevalidateSeconds: int(p.Revalidate / time.Second),
		FetchedAt:         p.FetchedAt.UTC(),
	}
}

// CacheControl returns header value letting shared caches serve the page for the revalidation period.
func (p ContributorsPage) CacheControl() string {
	return fmt.Sprintf(
		"public, max-age=0, s-maxage=%d, stale-while-revalidate",
		int(p.Revalidate/time.Second),
	)
}
