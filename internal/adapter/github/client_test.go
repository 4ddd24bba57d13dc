package github

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/m-zajac/agentsmd/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRepo = app.Repository{Owner: "openai", Name: "codex"}

func TestClient_TopContributors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doer    *mock.HTTPDoer
		repo    app.Repository
		count   int
		want    []string
		wantErr bool
	}{
		{
			name:    "invalid count",
			repo:    testRepo,
			count:   0,
			wantErr: true,
		},
		{
			name:    "invalid repository",
			repo:    app.Repository{Owner: "openai"},
			count:   3,
			wantErr: true,
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`[
						{"login": "a", "id": 1, "avatar_url": "https://avatars.githubusercontent.com/u/1?v=4", "contributions": 100},
						{"login": "b", "id": 2, "avatar_url": "https://avatars.githubusercontent.com/u/2?v=4", "contributions": 50},
						{"login": "c", "id": 3, "avatar_url": "https://avatars.githubusercontent.com/u/3?v=4", "contributions": 7}
					]`),
				},
			},
			repo:  testRepo,
			count: 3,
			want: []string{
				"https://avatars.githubusercontent.com/u/1?v=4",
				"https://avatars.githubusercontent.com/u/2?v=4",
				"https://avatars.githubusercontent.com/u/3?v=4",
			},
		},
		{
			name: "status not ok gives empty list",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers: []http.Header{
					{"X-Ratelimit-Remaining": []string{"0"}},
				},
			},
			repo:  testRepo,
			count: 3,
			want:  []string{},
		},
		{
			name: "status no content gives empty list",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNoContent},
			},
			repo:  testRepo,
			count: 3,
			want:  []string{},
		},
		{
			name: "transport error",
			doer: &mock.HTTPDoer{
				Errs: []error{errors.New("connection refused")},
			},
			repo:    testRepo,
			count:   3,
			wantErr: true,
		},
		{
			name: "invalid json",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{"message": "x"`)},
			},
			repo:    testRepo,
			count:   3,
			wantErr: true,
		},
		{
			name: "status ok, body unexpectedly large",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{
					[]byte(`[{"avatar_url": "` + strings.Repeat("x", 2*1024*1024) + `"}]`),
				},
			},
			repo:    testRepo,
			count:   3,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "token")
			got, err := c.TopContributors(context.Background(), tt.repo, tt.count)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)

			if tt.doer == nil {
				return
			}

			require.Len(t, tt.doer.Requests, 1)
			req := tt.doer.Requests[0]
			assert.Equal(t, "/repos/openai/codex/contributors", req.URL.Path)
			assert.Equal(t, "3", req.URL.Query().Get("per_page"))
			assert.Empty(t, req.URL.Query().Get("anon"))

			checkAPIHeaders(req, t)
		})
	}
}

func TestClient_ContributorsCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doer    *mock.HTTPDoer
		want    int
		wantErr bool
	}{
		{
			name: "last page from link header",
			doer: &mock.HTTPDoer{
				Headers: []http.Header{
					{"Link": []string{
						`<https://api.github.com/repositories/1/contributors?per_page=1&anon=1&page=2>; rel="next", ` +
							`<https://api.github.com/repositories/1/contributors?per_page=1&anon=1&page=412>; rel="last"`,
					}},
				},
				Bodies: [][]byte{[]byte(`[{"login": "a"}]`)},
			},
			want: 412,
		},
		{
			name: "no link header, single element",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`[{"login": "a"}]`)},
			},
			want: 1,
		},
		{
			name: "no link header, empty list",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`[]`)},
			},
			want: 0,
		},
		{
			name: "link header without last relation",
			doer: &mock.HTTPDoer{
				Headers: []http.Header{
					{"Link": []string{`<https://api.github.com/repositories/1/contributors?page=1>; rel="prev"`}},
				},
				Bodies: [][]byte{[]byte(`[{"login": "a"}]`)},
			},
			want: 1,
		},
		{
			name: "status not ok, no link",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			want: 0,
		},
		{
			name: "repository without contributors",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNoContent},
			},
			want: 0,
		},
		{
			name: "not an array",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{"message": "x"}`)},
			},
			wantErr: true,
		},
		{
			name: "transport error",
			doer: &mock.HTTPDoer{
				Errs: []error{errors.New("timeout")},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "token")
			got, err := c.ContributorsCount(context.Background(), testRepo)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)

			require.Len(t, tt.doer.Requests, 1)
			req := tt.doer.Requests[0]
			assert.Equal(t, "/repos/openai/codex/contributors", req.URL.Path)
			assert.Equal(t, "1", req.URL.Query().Get("per_page"))
			assert.Equal(t, "1", req.URL.Query().Get("anon"))

			checkAPIHeaders(req, t)
		})
	}
}

func TestClientWithoutToken(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{[]byte(`[]`)},
	}
	c := NewClient(doer, "https://fake", "")
	_, err := c.ContributorsCount(context.Background(), testRepo)
	require.NoError(t, err)

	require.Len(t, doer.Requests, 1)
	assert.Empty(t, doer.Requests[0].Header.Get("Authorization"))
}

func checkAPIHeaders(r *http.Request, t *testing.T) {
	t.Helper()

	assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
	assert.Equal(t, "agents-md-site", r.Header.Get("User-Agent"))
	assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
}
