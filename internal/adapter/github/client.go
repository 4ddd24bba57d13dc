package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/agentsmd/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns contributors data of github repositories.
// This struct is an adapter for app.ContributorsClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	userAgent string

	responseMaxSize int
}

var _ app.ContributorsClient = &Client{}

// NewClient creates new github client.
// authToken is optional, rate limit is lower without it.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	return &Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		userAgent: "agents-md-site",

		responseMaxSize: 1024 * 1024,
	}
}

// TopContributors returns avatar urls of repository's top contributors.
//
// Non-success http status isn't an error: empty list is returned.
func (c *Client) TopContributors(ctx context.Context, repo app.Repository, count int) ([]string, error) {
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(count))

	resp, err := c.getContributors(ctx, repo, v)
	if err != nil {
		return nil, err
	}
	if !resp.ok() || resp.status == http.StatusNoContent {
		return []string{}, nil
	}

	var contributors contributorsResponse
	if err := json.Unmarshal(resp.body, &contributors); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return contributors.Avatars(count), nil
}

// ContributorsCount returns total number of repository contributors, anonymous included.
//
// Asks for a single element page and reads the number of the last page from Link header.
// Without pagination there's at most one page, so the number of returned elements is the total.
func (c *Client) ContributorsCount(ctx context.Context, repo app.Repository) (int, error) {
	v := make(url.Values)
	v.Set("per_page", "1")
	v.Set("anon", "1")

	resp, err := c.getContributors(ctx, repo, v)
	if err != nil {
		return 0, err
	}

	if last, ok := ParseLastPage(resp.header.Get("Link")); ok {
		return last, nil
	}
	if !resp.ok() || resp.status == http.StatusNoContent {
		return 0, nil
	}

	n, err := countItems(resp.body)
	if err != nil {
		return 0, fmt.Errorf("counting response items: %w", err)
	}

	return n, nil
}

func (c *Client) getContributors(ctx context.Context, repo app.Repository, v url.Values) (*response, error) {
	if repo.Owner == "" || repo.Name == "" {
		return nil, app.InvalidRequestError("repository owner and name cannot be empty")
	}

	u, err := url.Parse(c.address + fmt.Sprintf(
		"/repos/%s/%s/contributors",
		url.PathEscape(repo.Owner),
		url.PathEscape(repo.Name),
	))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	resp, err := c.makeRequest(ctx, httpReq, c.responseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	return resp, nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) (*response, error) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	r := response{
		status: resp.StatusCode,
		header: resp.Header,
	}
	if !r.ok() {
		return &r, nil
	}

	// Reading one byte over the limit tells truncated body from the one of exact size.
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > maxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBytes)
	}
	r.body = b

	return &r, nil
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (r *response) ok() bool {
	return r.status/100 == 2
}
