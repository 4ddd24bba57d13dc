package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// MaxAvatars is the maximum number of avatars kept per repository.
	MaxAvatars = 3

	defaultCacheTTL       = 12 * time.Hour
	defaultHitRevalidate  = time.Hour
	defaultMissRevalidate = 24 * time.Hour
)

// ContributorsClient returns contributors data for github repositories.
//go:generate mockgen -destination mock/app.go -package mock github.com/m-zajac/agentsmd/internal/app ContributorsClient,Cache
type ContributorsClient interface {
	// TopContributors returns avatar urls of up to count top contributors.
	TopContributors(ctx context.Context, repo Repository, count int) ([]string, error)
	// ContributorsCount returns total number of contributors, anonymous included.
	ContributorsCount(ctx context.Context, repo Repository) (int, error)
}

// Cache stores results of fetch cycles.
type Cache interface {
	Get(key string) (CacheEntry, bool)
	Add(key string, entry CacheEntry)
}

// LoaderOption customizes Loader.
type LoaderOption func(*Loader)

// WithCacheTTL sets how long fetched data is served from cache.
func WithCacheTTL(ttl time.Duration) LoaderOption {
	return func(l *Loader) { l.ttl = ttl }
}

// WithRevalidate sets revalidation hints returned on cache hit and miss.
func WithRevalidate(hit time.Duration, miss time.Duration) LoaderOption {
	return func(l *Loader) {
		l.hitRevalidate = hit
		l.missRevalidate = miss
	}
}

// WithClock sets time source. Defaults to time.Now.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) { l.now = now }
}

// WithCallTimeout sets timeout for every single client call. Zero disables it.
func WithCallTimeout(timeout time.Duration) LoaderOption {
	return func(l *Loader) { l.callTimeout = timeout }
}

// Loader returns contributor summaries for configured repositories.
//
// Data is served from cache while it's younger than cache ttl. Otherwise every repository
// is fetched sequentially and the whole mapping replaces the cache entry.
// Failures never abort the cycle: a repository whose avatars can't be fetched gets an empty summary,
// and a failed count falls back to the number of avatars.
// A started cycle always runs to completion, even when the caller that started it gives up.
type Loader struct {
	client      ContributorsClient
	cache       Cache
	repos       []Repository
	key         string
	ttl         time.Duration
	callTimeout time.Duration

	hitRevalidate  time.Duration
	missRevalidate time.Duration

	now func() time.Time
	l   logrus.FieldLogger

	// Serializes fetch cycles, so there's only one cache writer.
	sem chan struct{}
}

// NewLoader creates new Loader instance.
func NewLoader(
	client ContributorsClient,
	cache Cache,
	repos []Repository,
	l logrus.FieldLogger,
	opts ...LoaderOption,
) (*Loader, error) {
	if len(repos) == 0 {
		return nil, InvalidRequestError("repositories list cannot be empty")
	}

	names := make([]string, 0, len(repos))
	seen := make(map[string]bool, len(repos))
	for _, r := range repos {
		if r.Owner == "" || r.Name == "" {
			return nil, InvalidRequestError(fmt.Sprintf("invalid repository: %q", r.String()))
		}
		if seen[r.String()] {
			return nil, InvalidRequestError(fmt.Sprintf("duplicated repository: %s", r))
		}
		seen[r.String()] = true
		names = append(names, r.String())
	}

	loader := Loader{
		client:         client,
		cache:          cache,
		repos:          append([]Repository(nil), repos...),
		key:            strings.Join(names, ","),
		ttl:            defaultCacheTTL,
		hitRevalidate:  defaultHitRevalidate,
		missRevalidate: defaultMissRevalidate,
		now:            time.Now,
		l:              l,
		sem:            make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(&loader)
	}

	return &loader, nil
}

// Repositories returns configured repositories in display order.
func (l *Loader) Repositories() []Repository {
	return append([]Repository(nil), l.repos...)
}

// CacheKey returns the key under which fetched data is cached.
func (l *Loader) CacheKey() string {
	return l.key
}

// Load returns summaries for all configured repositories.
//
// Fetch cycle isn't bound to ctx: it's limited only by call timeouts and its result is always cached.
// If ctx is done before fresh data is available, the last cached entry is returned even if it's expired,
// or empty degraded summaries when nothing was fetched yet. Error is never returned.
// Returned maps are copies and can be modified.
func (l *Loader) Load(ctx context.Context) (ContributorsPage, error) {
	if page, ok := l.fromCache(); ok {
		return page, nil
	}

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return l.fallback(ctx.Err()), nil
	}

	// Cycle that held the semaphore could have filled the cache.
	if page, ok := l.fromCache(); ok {
		<-l.sem
		return page, nil
	}

	done := make(chan ContributorsPage, 1)
	go func() {
		defer func() { <-l.sem }()
		done <- l.cycle(context.WithoutCancel(ctx))
	}()

	select {
	case page := <-done:
		return page, nil
	case <-ctx.Done():
		return l.fallback(ctx.Err()), nil
	}
}

func (l *Loader) fromCache() (ContributorsPage, bool) {
	entry, ok := l.cache.Get(l.key)
	if !ok || l.now().Sub(entry.FetchedAt) >= l.ttl {
		return ContributorsPage{}, false
	}

	return l.cachedPage(entry), true
}

func (l *Loader) cachedPage(entry CacheEntry) ContributorsPage {
	return ContributorsPage{
		Repositories: copySummaries(entry.Data),
		Degraded:     copyFlags(entry.Degraded),
		Revalidate:   l.hitRevalidate,
		FetchedAt:    entry.FetchedAt,
		FromCache:    true,
	}
}

// fallback returns data for a caller that can't wait for the running cycle.
func (l *Loader) fallback(reason error) ContributorsPage {
	if entry, ok := l.cache.Get(l.key); ok {
		l.l.Warnf("serving contributors fetched at %s: %v", entry.FetchedAt.Format(time.RFC3339), reason)
		return l.cachedPage(entry)
	}

	l.l.Warnf("serving empty contributors: %v", reason)
	data := make(map[string]ContributorSummary, len(l.repos))
	degraded := make(map[string]bool, len(l.repos))
	for _, repo := range l.repos {
		data[repo.String()] = ContributorSummary{Avatars: []string{}, Total: 0}
		degraded[repo.String()] = true
	}

	return ContributorsPage{
		Repositories: data,
		Degraded:     degraded,
		Revalidate:   l.hitRevalidate,
		FetchedAt:    l.now(),
	}
}

func (l *Loader) cycle(ctx context.Context) ContributorsPage {
	results := make([]RepositoryResult, 0, len(l.repos))
	data := make(map[string]ContributorSummary, len(l.repos))
	degraded := make(map[string]bool)
	for _, repo := range l.repos {
		res := l.fetch(ctx, repo)
		results = append(results, res)
		data[repo.String()] = res.Summary
		if res.Degraded {
			degraded[repo.String()] = true
		}
	}

	page := ContributorsPage{
		Repositories: data,
		Results:      results,
		Degraded:     degraded,
		Revalidate:   l.missRevalidate,
		FetchedAt:    l.now(),
	}
	l.cache.Add(l.key, CacheEntry{
		Data:      copySummaries(data),
		Degraded:  copyFlags(degraded),
		FetchedAt: page.FetchedAt,
	})

	return page
}

func (l *Loader) fetch(ctx context.Context, repo Repository) RepositoryResult {
	callCtx, cancel := l.callContext(ctx)
	avatars, err := l.client.TopContributors(callCtx, repo, MaxAvatars)
	cancel()
	if err != nil {
		l.l.Errorf("fetching contributors for %s: %v", repo, err)
		return RepositoryResult{
			Repository: repo,
			Summary: ContributorSummary{
				Avatars: []string{},
				Total:   0,
			},
			Degraded: true,
			Err:      err,
		}
	}

	if len(avatars) > MaxAvatars {
		avatars = avatars[:MaxAvatars]
	}
	if avatars == nil {
		avatars = []string{}
	}

	result := RepositoryResult{
		Repository: repo,
		Summary: ContributorSummary{
			Avatars: avatars,
			Total:   len(avatars),
		},
	}

	callCtx, cancel = l.callContext(ctx)
	total, err := l.client.ContributorsCount(callCtx, repo)
	cancel()
	switch {
	case err != nil:
		l.l.Errorf("fetching contributors count for %s: %v", repo, err)
		result.Degraded = true
		result.Err = err
	case total < 0:
		result.Degraded = true
		result.Err = errors.New("negative contributors count")
	default:
		result.Summary.Total = total
	}

	return result
}

func (l *Loader) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, l.callTimeout)
}

func copySummaries(src map[string]ContributorSummary) map[string]ContributorSummary {
	dst := make(map[string]ContributorSummary, len(src))
	for k, v := range src {
		v.Avatars = append([]string{}, v.Avatars...)
		dst[k] = v
	}

	return dst
}

func copyFlags(src map[string]bool) map[string]bool {
	dst := make(map[string]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
