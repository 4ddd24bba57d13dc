package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/agentsmd/internal/api/grpc/mock"
	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

var testPage = app.ContributorsPage{
	Repositories: map[string]app.ContributorSummary{
		"openai/codex":    {Avatars: []string{"https://a/1", "https://a/2", "https://a/3"}, Total: 325},
		"PlutoLang/Pluto": {Avatars: []string{}, Total: 0},
	},
	Results: []app.RepositoryResult{
		{
			Repository: app.Repository{Owner: "openai", Name: "codex"},
			Summary:    app.ContributorSummary{Avatars: []string{"https://a/1", "https://a/2", "https://a/3"}, Total: 325},
		},
		{
			Repository: app.Repository{Owner: "PlutoLang", Name: "Pluto"},
			Summary:    app.ContributorSummary{Avatars: []string{}, Total: 0},
			Degraded:   true,
			Err:        errors.New("timeout"),
		},
	},
	Degraded:   map[string]bool{"PlutoLang/Pluto": true},
	Revalidate: 24 * time.Hour,
	FetchedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func TestServiceList(t *testing.T) {
	tests := []struct {
		name     string
		page     app.ContributorsPage
		err      error
		wantCode codes.Code
	}{
		{
			name:     "app service error",
			err:      errors.New("test error"),
			wantCode: codes.Unavailable,
		},
		{
			name:     "app service ok",
			page:     testPage,
			wantCode: codes.OK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			appService := mock.NewMockAppService(ctrl)
			appService.EXPECT().Load(gomock.Any()).Return(tt.page, tt.err)

			s := NewService(appService)

			got, err := s.List(context.Background(), &emptypb.Empty{})
			require.Equal(t, tt.wantCode, status.Code(err))
			if err != nil {
				assert.Nil(t, got)
				return
			}

			fields := got.GetFields()
			assert.Equal(t, float64(86400), fields["revalidateSeconds"].GetNumberValue())
			assert.Equal(t, "2026-01-02T03:04:05Z", fields["fetchedAt"].GetStringValue())

			codex := fields["repositories"].GetStructValue().GetFields()["openai/codex"].GetStructValue().GetFields()
			assert.Equal(t, float64(325), codex["total"].GetNumberValue())
			assert.Len(t, codex["avatars"].GetListValue().GetValues(), 3)
			assert.False(t, codex["degraded"].GetBoolValue())

			pluto := fields["repositories"].GetStructValue().GetFields()["PlutoLang/Pluto"].GetStructValue().GetFields()
			assert.True(t, pluto["degraded"].GetBoolValue())
		})
	}
}

func TestClientServer(t *testing.T) {
	cachedPage := app.ContributorsPage{
		Repositories: testPage.Repositories,
		Degraded:     testPage.Degraded,
		Revalidate:   time.Hour,
		FetchedAt:    testPage.FetchedAt,
		FromCache:    true,
	}

	tests := []struct {
		name        string
		page        app.ContributorsPage
		wantResults []app.RepositoryResult
	}{
		{
			name: "fresh data",
			page: testPage,
			wantResults: []app.RepositoryResult{
				{
					Repository: app.Repository{Owner: "PlutoLang", Name: "Pluto"},
					Summary:    app.ContributorSummary{Avatars: []string{}, Total: 0},
					Degraded:   true,
				},
				{
					Repository: app.Repository{Owner: "openai", Name: "codex"},
					Summary:    app.ContributorSummary{Avatars: []string{"https://a/1", "https://a/2", "https://a/3"}, Total: 325},
				},
			},
		},
		{
			name: "cached data keeps degraded flags without results",
			page: cachedPage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			appService := mock.NewMockAppService(ctrl)
			appService.EXPECT().Load(gomock.Any()).Return(tt.page, nil)

			conn, stop := startBufconnServer(t, appService)
			defer stop()

			got, err := NewClient(conn).Load(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.page.Repositories, got.Repositories)
			assert.Equal(t, map[string]bool{"PlutoLang/Pluto": true}, got.Degraded)
			assert.Equal(t, tt.page.Revalidate, got.Revalidate)
			assert.Equal(t, tt.page.FromCache, got.FromCache)
			assert.True(t, tt.page.FetchedAt.Equal(got.FetchedAt))
			assert.Equal(t, tt.wantResults, got.Results)
		})
	}
}

func TestClientServerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appService := mock.NewMockAppService(ctrl)
	appService.EXPECT().Load(gomock.Any()).Return(app.ContributorsPage{}, context.Canceled)

	conn, stop := startBufconnServer(t, appService)
	defer stop()

	_, err := NewClient(conn).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

// startBufconnServer serves appService in memory. stop closes the connection and waits for graceful stop.
func startBufconnServer(t *testing.T, appService AppService) (*grpc.ClientConn, func()) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := NewServer(NewService(appService), "bufnet", logrus.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		cancel()
		require.NoError(t, <-done)
	}
}
