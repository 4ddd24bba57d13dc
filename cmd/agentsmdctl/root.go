package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/m-zajac/agentsmd/internal/adapter/cache"
	"github.com/m-zajac/agentsmd/internal/adapter/github"
	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/m-zajac/agentsmd/internal/limiter"
	"github.com/m-zajac/agentsmd/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Linker flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "agentsmdctl",
	Short:         "Inspect AGENTS.md contributors data and build the static site.",
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(contributorsCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)

	defaultRepos := make([]string, 0, len(app.DefaultRepositories))
	for _, r := range app.DefaultRepositories {
		defaultRepos = append(defaultRepos, r.String())
	}

	rootCmd.PersistentFlags().StringSlice("repos", defaultRepos, "Comma-separated owner/name list of repositories")
	rootCmd.PersistentFlags().String("github-address", "https://api.github.com", "Github rest api address")
	rootCmd.PersistentFlags().String("github-token", "", "Github auth token (defaults to GH_AUTH_TOKEN)")
	rootCmd.PersistentFlags().Float64("github-rate-limit", 5, "Max github calls per second, zero disables limiting")
	rootCmd.PersistentFlags().Duration("github-timeout", 15*time.Second, "Timeout for a single github call")
	rootCmd.PersistentFlags().String("log-level", "warning", "Log level")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		logrus.Fatalf("binding root flags: %v", err)
	}

	contributorsCmd.Flags().String("grpc", "", "Query grpc server at given address instead of github")
	if err := viper.BindPFlags(contributorsCmd.Flags()); err != nil {
		logrus.Fatalf("binding contributors flags: %v", err)
	}

	buildCmd.Flags().String("out", "dist", "Output directory, empty disables local output")
	buildCmd.Flags().String("s3-bucket", "", "S3 bucket to upload the site to")
	buildCmd.Flags().String("s3-prefix", "", "Key prefix of uploaded objects")
	buildCmd.Flags().String("region", "", "AWS region (defaults to aws config chain)")
	if err := viper.BindPFlags(buildCmd.Flags()); err != nil {
		logrus.Fatalf("binding build flags: %v", err)
	}
}

// initConfig reads ENV variables prefixed with AGENTSMD.
func initConfig() {
	viper.SetEnvPrefix("AGENTSMD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("github-token", "AGENTSMD_GITHUB_TOKEN", "GH_AUTH_TOKEN")
}

// Execute runs the root command. Interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func newLogger() (*logrus.Logger, error) {
	l, err := logging.New(logging.Options{Level: viper.GetString("log-level")})
	if err != nil {
		return nil, err
	}
	l.SetOutput(os.Stderr)

	return l, nil
}

// newLoader builds loader fetching directly from github, without persistent cache.
func newLoader(l logrus.FieldLogger) (*app.Loader, []app.Repository, error) {
	repos, err := app.ParseRepositories(viper.GetStringSlice("repos"))
	if err != nil {
		return nil, nil, err
	}

	doer := limiter.NewHTTPDoer(
		&netHttp.Client{Timeout: 30 * time.Second},
		viper.GetFloat64("github-rate-limit"),
		1,
	)
	client := github.NewClient(doer, viper.GetString("github-address"), viper.GetString("github-token"))

	lru, err := cache.NewLRU(1)
	if err != nil {
		return nil, nil, err
	}

	loader, err := app.NewLoader(
		client,
		lru,
		repos,
		l.WithField("component", "loader"),
		app.WithCallTimeout(viper.GetDuration("github-timeout")),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating loader: %w", err)
	}

	return loader, repos, nil
}
