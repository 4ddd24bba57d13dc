package grpc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m-zajac/agentsmd/internal/app"
	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client queries agentsmd.Contributors service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates new Client using given connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Load returns contributors data served by remote server.
// Results are filled only for freshly fetched data, ordered by repository identifier.
func (c *Client) Load(ctx context.Context) (app.ContributorsPage, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, listMethod, new(emptypb.Empty), out); err != nil {
		return app.ContributorsPage{}, fmt.Errorf("calling %s: %w", listMethod, err)
	}

	return parseListReply(out)
}

func parseListReply(s *structpb.Struct) (app.ContributorsPage, error) {
	fields := s.GetFields()

	page := app.ContributorsPage{
		Repositories: make(map[string]app.ContributorSummary),
		Degraded:     make(map[string]bool),
		Revalidate:   time.Duration(fields["revalidateSeconds"].GetNumberValue()) * time.Second,
		FromCache:    fields["fromCache"].GetBoolValue(),
	}

	if v := fields["fetchedAt"].GetStringValue(); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return app.ContributorsPage{}, fmt.Errorf("parsing fetchedAt: %w", err)
		}
		page.FetchedAt = t
	}

	repos := fields["repositories"].GetStructValue().GetFields()
	names := make([]string, 0, len(repos))
	for name := range repos {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		repo, err := app.ParseRepository(name)
		if err != nil {
			return app.ContributorsPage{}, err
		}

		repoFields := repos[name].GetStructValue().GetFields()
		avatars := make([]string, 0, app.MaxAvatars)
		for _, a := range repoFields["avatars"].GetListValue().GetValues() {
			avatars = append(avatars, a.GetStringValue())
		}
		summary := app.ContributorSummary{
			Avatars: avatars,
			Total:   int(repoFields["total"].GetNumberValue()),
		}

		degraded := repoFields["degraded"].GetBoolValue()

		page.Repositories[name] = summary
		if degraded {
			page.Degraded[name] = true
		}
		if !page.FromCache {
			page.Results = append(page.Results, app.RepositoryResult{
				Repository: repo,
				Summary:    summary,
				Degraded:   degraded,
			})
		}
	}

	return page, nil
}
