package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/agentsmd/internal/adapter/cache"
	"github.com/m-zajac/agentsmd/internal/adapter/github"
	"github.com/m-zajac/agentsmd/internal/api/grpc"
	"github.com/m-zajac/agentsmd/internal/api/http"
	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/m-zajac/agentsmd/internal/database"
	"github.com/m-zajac/agentsmd/internal/limiter"
	"github.com/m-zajac/agentsmd/internal/logging"
	"github.com/m-zajac/agentsmd/internal/page"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logrus.Errorf("agentsmd: %v", err)
		stop()
		os.Exit(1)
	}
}

// run wires the app and serves until ctx is done or one of the servers fails.
func run(ctx context.Context) error {
	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return fmt.Errorf("couldn't parse config: %w", err)
	}

	l, err := logging.New(logging.Options{
		Level:      conf.LogLevel,
		JSON:       conf.LogJSON,
		File:       conf.LogFile,
		MaxSizeMB:  conf.LogMaxSizeMB,
		MaxBackups: conf.LogMaxBackups,
	})
	if err != nil {
		return fmt.Errorf("couldn't create logger: %w", err)
	}

	repos, err := app.ParseRepositories(conf.Repositories)
	if err != nil {
		return fmt.Errorf("invalid repositories: %w", err)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
		1,
	)
	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)
	if conf.GithubAPIToken == "" {
		l.Warn("GH_AUTH_TOKEN is not set, github rate limit is lower")
	}

	lru, err := cache.NewLRU(conf.CacheSize)
	if err != nil {
		return fmt.Errorf("couldn't create cache: %w", err)
	}
	var contributorsCache app.Cache = lru
	if conf.SnapshotDBPath != "" {
		kvStore, err := database.NewBoltKVStore(
			conf.SnapshotDBPath,
			conf.SnapshotBucketName,
			time.Second,
		)
		if err != nil {
			return fmt.Errorf("couldn't create bolt kv store: %w", err)
		}
		defer kvStore.Close()

		contributorsCache = cache.NewPersistent(lru, kvStore, l.WithField("component", "snapshotCache"))
	}

	loader, err := app.NewLoader(
		githubClient,
		contributorsCache,
		repos,
		l.WithField("component", "loader"),
		app.WithCacheTTL(conf.CacheTTL),
		app.WithRevalidate(conf.CacheHitRevalidate, conf.CacheMissRevalidate),
		app.WithCallTimeout(conf.GithubTimeout),
	)
	if err != nil {
		return fmt.Errorf("couldn't create loader: %w", err)
	}

	renderer, err := page.NewRenderer(page.DefaultMeta, repos, nil)
	if err != nil {
		return fmt.Errorf("couldn't create page renderer: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mux := http.NewMux(loader, renderer, conf.HandlerTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			errs <- err
			cancel()
		}
	}()

	if conf.GRPCServerAddress != "" {
		grpcServer := grpc.NewServer(
			grpc.NewService(loader),
			conf.GRPCServerAddress,
			l.WithField("component", "grpcServer"),
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := grpcServer.Run(ctx); err != nil {
				errs <- err
				cancel()
			}
		}()
	}

	wg.Wait()
	close(errs)

	return <-errs
}
