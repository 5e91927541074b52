package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	App
	Import
	PostgreSQL
	HTTP
	NVD
	OpenAI
	Web
}

type App struct {
	Storage         string
	AnalyzerWorkers int
	UploadMaxBytes  int64
}

// Import configures the watch directory importer. An empty WatchDirectory
// disables it.
type Import struct {
	WatchDirectory        string
	ReportsDirectory      string
	DirectoryScanInterval time.Duration
	ReportFormats         []string
}

type PostgreSQL struct {
	Host              string
	Port              string
	Username          string
	Password          string
	DBName            string
	SSLMode           string
	MaxConns          int32
	ConnectRetries    int
	ConnectRetryDelay time.Duration
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type NVD struct {
	BaseURL string
	Timeout time.Duration
}

type OpenAI struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Web configures the server-rendered front. An empty APIURL means the front
// talks to the API served by this same process.
type Web struct {
	APIURL          string
	RefreshSchedule string
	FetchTimeout    time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			Storage:         cmd.String("storage"),
			AnalyzerWorkers: cmd.Int("analyzer-workers"),
			UploadMaxBytes:  cmd.Int64("upload-max-bytes"),
		},
		Import: Import{
			WatchDirectory:        cmd.String("watch-dir"),
			ReportsDirectory:      cmd.String("reports-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
			ReportFormats:         cmd.StringSlice("report-formats"),
		},
		PostgreSQL: PostgreSQL{
			Host:              cmd.String("pg-host"),
			Port:              cmd.String("pg-port"),
			Username:          cmd.String("pg-username"),
			Password:          cmd.String("pg-password"),
			DBName:            cmd.String("pg-dbname"),
			SSLMode:           cmd.String("pg-sslmode"),
			MaxConns:          cmd.Int32("pg-max-conns"),
			ConnectRetries:    cmd.Int("pg-connect-retries"),
			ConnectRetryDelay: cmd.Duration("pg-connect-retry-delay"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		NVD: NVD{
			BaseURL: cmd.String("nvd-url"),
			Timeout: cmd.Duration("nvd-timeout"),
		},
		OpenAI: OpenAI{
			APIKey:  cmd.String("openai-api-key"),
			Model:   cmd.String("openai-model"),
			BaseURL: cmd.String("openai-url"),
			Timeout: cmd.Duration("openai-timeout"),
		},
		Web: Web{
			APIURL:          cmd.String("web-api-url"),
			RefreshSchedule: cmd.String("web-refresh-schedule"),
			FetchTimeout:    cmd.Duration("web-fetch-timeout"),
		},
	}
}
