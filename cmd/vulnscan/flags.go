package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/vulnscan/internal/app"
	"github.com/kurochkinivan/vulnscan/internal/config"
	"github.com/kurochkinivan/vulnscan/internal/gateway/nvd"
	"github.com/kurochkinivan/vulnscan/internal/gateway/openai"
	"github.com/kurochkinivan/vulnscan/internal/infrastructure/report"
	"github.com/robfig/cron/v3"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "vulnscan",
		Usage:   "nmap scan analysis service with web dashboard",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "storage",
			Usage:     "Set scan storage backend: memory or postgres",
			Value:     "memory",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.storage", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateStorage,
		},
		&cli.IntFlag{
			Name:    "analyzer-workers",
			Usage:   "Set number of services enriched concurrently",
			Value:   4,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.analyzer_workers", altsrc.NewStringPtrSourcer(&config))),
			Validator: func(n int) error {
				if n < 1 {
					return fmt.Errorf("analyzer workers must be positive, got %d", n)
				}
				return nil
			},
		},
		&cli.Int64Flag{
			Name:    "upload-max-bytes",
			Usage:   "Set maximum accepted scan report size",
			Value:   10 << 20,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.upload_max_bytes", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Set directory to watch for nmap XML reports, empty disables",
			Sources:   cli.NewValueSourceChain(yaml.YAML("import.watch_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write reports of imported scans to",
			Sources:   cli.NewValueSourceChain(yaml.YAML("import.reports_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set watch directory scan interval",
			Sources: cli.NewValueSourceChain(yaml.YAML("import.scan_interval", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringSliceFlag{
			Name:      "report-formats",
			Usage:     "Set formats of reports written for imported scans: pdf, csv, xlsx",
			Value:     []string{"pdf"},
			Sources:   cli.NewValueSourceChain(yaml.YAML("import.report_formats", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateReportFormats,
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "vulnscan",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.sslmode", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.Int32Flag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size",
			Value:   10,
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.max_conns", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "pg-connect-retries",
			Usage:   "Set number of PostgreSQL connection retries",
			Value:   5,
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.connect_retries", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "pg-connect-retry-delay",
			Usage:   "Set delay between PostgreSQL connection retries",
			Value:   2 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.connect_retry_delay", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8000",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   5 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "nvd-url",
			Usage:   "Set NVD API base URL",
			Value:   nvd.DefaultBaseURL,
			Sources: cli.NewValueSourceChain(yaml.YAML("nvd.url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "nvd-timeout",
			Usage:   "Set NVD request timeout",
			Value:   10 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("nvd.timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:  "openai-api-key",
			Usage: "Set OpenAI API key",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("OPENAI_API_KEY"),
				yaml.YAML("openai.api_key", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:    "openai-model",
			Usage:   "Set OpenAI chat model",
			Value:   openai.DefaultModel,
			Sources: cli.NewValueSourceChain(yaml.YAML("openai.model", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "openai-url",
			Usage:   "Set OpenAI API base URL",
			Value:   openai.DefaultBaseURL,
			Sources: cli.NewValueSourceChain(yaml.YAML("openai.url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "openai-timeout",
			Usage:   "Set OpenAI request timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("openai.timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "web-api-url",
			Usage:   "Set scan API URL used by the web front, defaults to this server",
			Sources: cli.NewValueSourceChain(yaml.YAML("web.api_url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "web-refresh-schedule",
			Usage:     "Set cron `SPEC` for refreshing the dashboard scan list, empty disables",
			Sources:   cli.NewValueSourceChain(yaml.YAML("web.refresh_schedule", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateSchedule,
		},
		&cli.DurationFlag{
			Name:    "web-fetch-timeout",
			Usage:   "Set timeout of scan API requests made by the web front",
			Value:   10 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("web.fetch_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateReportFormats(formats []string) error {
	for _, f := range formats {
		if _, err := report.ParseFormat(f); err != nil {
			return err
		}
	}

	return nil
}

func validateStorage(storage string) error {
	switch storage {
	case config.StorageMemory, config.StoragePostgres:
		return nil
	default:
		return fmt.Errorf("storage must be %q or %q, got %q", config.StorageMemory, config.StoragePostgres, storage)
	}
}

func validateSchedule(spec string) error {
	if spec == "" {
		return nil
	}

	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
