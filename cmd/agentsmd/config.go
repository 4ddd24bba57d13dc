package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// HandlerTimeout - timeout for http handler execution
	HandlerTimeout time.Duration `default:"60s"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `envconfig:"GH_AUTH_TOKEN" default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls. Zero or less disables limiting
	GithubAPIRateLimit float64 `default:"5"`

	// GithubTimeout - timeout for a single github api call
	GithubTimeout time.Duration `default:"15s"`

	// Repositories - comma separated owner/name list of example repositories
	Repositories []string `default:"openai/codex,apache/airflow,temporalio/sdk-java,PlutoLang/Pluto"`

	// CacheTTL - how long fetched contributors data is served from cache
	CacheTTL time.Duration `default:"12h"`

	// CacheHitRevalidate - page revalidation period when data comes from cache
	CacheHitRevalidate time.Duration `default:"1h"`

	// CacheMissRevalidate - page revalidation period after fresh fetch
	CacheMissRevalidate time.Duration `default:"24h"`

	// CacheSize - maximum number of elements in memory cache
	CacheSize int `default:"16"`

	// SnapshotDBPath - filepath for bolt db snapshot of cached data. If empty, snapshots are disabled
	SnapshotDBPath string `default:""`

	// SnapshotBucketName - bolt db bucket name
	SnapshotBucketName string `default:"contributors"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`

	// LogJSON - enables json log format
	LogJSON bool `default:"false"`

	// LogFile - path of rotated log file. If empty, logs go to stdout
	LogFile string `default:""`

	// LogMaxSizeMB - log file size triggering rotation
	LogMaxSizeMB int `default:"100"`

	// LogMaxBackups - number of rotated log files kept
	LogMaxBackups int `default:"3"`
}
