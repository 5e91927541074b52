package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/vulnscan/internal/analysis"
	"github.com/kurochkinivan/vulnscan/internal/config"
	v1 "github.com/kurochkinivan/vulnscan/internal/controller/http/v1"
	"github.com/kurochkinivan/vulnscan/internal/domain"
	"github.com/kurochkinivan/vulnscan/internal/gateway/nvd"
	"github.com/kurochkinivan/vulnscan/internal/gateway/openai"
	"github.com/kurochkinivan/vulnscan/internal/infrastructure/report"
	"github.com/kurochkinivan/vulnscan/internal/pipeline"
	"github.com/kurochkinivan/vulnscan/internal/repository/memory"
	"github.com/kurochkinivan/vulnscan/internal/repository/postgresql"
	"github.com/kurochkinivan/vulnscan/internal/webapp"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second

	filesBuffer    = 100
	importedBuffer = 50
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("storage", a.cfg.App.Storage),
		slog.Int("analyzer_workers", a.cfg.App.AnalyzerWorkers),
		slog.Bool("openai_configured", a.cfg.OpenAI.APIKey != ""),
	)

	repo, closeRepo, err := a.scansRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	cveFinder := nvd.NewClient(
		a.log.With(slog.String("component", "nvd")),
		a.cfg.NVD.BaseURL,
		&http.Client{Timeout: a.cfg.NVD.Timeout},
	)
	advisor := openai.NewClient(
		a.log.With(slog.String("component", "openai")),
		a.cfg.OpenAI.APIKey,
		a.cfg.OpenAI.Model,
		a.cfg.OpenAI.BaseURL,
		&http.Client{Timeout: a.cfg.OpenAI.Timeout},
	)
	analyzer := analysis.NewAnalyzer(a.log, cveFinder, advisor, a.cfg.App.AnalyzerWorkers)

	scansHandler := v1.NewScansHandler(a.log, repo, analyzer, advisor, report.New(), a.cfg.App.UploadMaxBytes)

	listener, err := net.Listen("tcp", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	apiURL := a.cfg.Web.APIURL
	if apiURL == "" {
		apiURL = "http://" + listener.Addr().String()
	}

	webLog := a.log.With(slog.String("component", "web"))
	apiClient := webapp.NewAPIClient(apiURL, &http.Client{Timeout: a.cfg.Web.FetchTimeout})
	webApp := webapp.NewApp(webLog, apiClient)

	views, err := webapp.NewViews()
	if err != nil {
		listener.Close()
		return fmt.Errorf("failed to load views: %w", err)
	}

	server := v1.NewServer(a.cfg.HTTP, scansHandler, webapp.NewRouter(webLog, webApp, apiClient, views, a.cfg.App.UploadMaxBytes))

	erg, ctx := errgroup.WithContext(ctx)

	if a.cfg.Import.WatchDirectory != "" {
		if err := a.startImport(ctx, erg, analyzer, repo, webApp); err != nil {
			listener.Close()
			return err
		}
	}

	return a.serve(ctx, erg, listener, server, webApp)
}

// startImport runs the watch directory pipeline: scanner, importer and
// reporter connected by channels.
func (a *App) startImport(
	ctx context.Context,
	erg *errgroup.Group,
	analyzer pipeline.ScanAnalyzer,
	saver pipeline.ScanSaver,
	listener pipeline.ScanListener,
) error {
	formats := make([]report.Format, 0, len(a.cfg.Import.ReportFormats))
	for _, f := range a.cfg.Import.ReportFormats {
		format, err := report.ParseFormat(f)
		if err != nil {
			return err
		}
		formats = append(formats, format)
	}

	a.log.InfoContext(ctx, "starting report import",
		slog.String("watch_dir", a.cfg.Import.WatchDirectory),
		slog.String("reports_dir", a.cfg.Import.ReportsDirectory),
		slog.Duration("scan_interval", a.cfg.Import.DirectoryScanInterval),
	)

	log := a.log.With(slog.String("component", "import"))

	files := make(chan string, filesBuffer)
	imported := make(chan *domain.ImportResult, importedBuffer)

	scanner := pipeline.NewScanner(log, a.cfg.Import.WatchDirectory, a.cfg.Import.DirectoryScanInterval, files)
	importer := pipeline.NewImporter(log, files, imported, analyzer, saver)
	reporter := pipeline.NewReporter(log, a.cfg.Import.ReportsDirectory, formats, imported, report.New(), listener)

	erg.Go(func() error {
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		return importer.Run(ctx)
	})

	erg.Go(func() error {
		return reporter.Run(ctx)
	})

	return nil
}

func (a *App) serve(ctx context.Context, erg *errgroup.Group, listener net.Listener, server *v1.Server, webApp *webapp.App) error {
	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server", slog.String("addr", listener.Addr().String()))

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	erg.Go(func() error {
		webApp.Mount(ctx)
		<-ctx.Done()
		webApp.Unmount()

		return nil
	})

	if spec := a.cfg.Web.RefreshSchedule; spec != "" {
		erg.Go(func() error {
			return a.refreshScans(ctx, spec, webApp)
		})
	}

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

// refreshScans re-reads the dashboard scan list on schedule until ctx is done.
func (a *App) refreshScans(ctx context.Context, spec string, webApp *webapp.App) error {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		a.log.DebugContext(ctx, "scheduled scan list refresh")
		webApp.FetchScans(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule scan list refresh: %w", err)
	}

	a.log.InfoContext(ctx, "scan list refresh scheduled", slog.String("schedule", spec))

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()

	return nil
}

func (a *App) scansRepository(ctx context.Context) (v1.ScansRepository, func(), error) {
	if a.cfg.App.Storage != config.StoragePostgres {
		a.log.WarnContext(ctx, "using in-memory storage, scans are lost on restart")
		return memory.NewScansRepository(), func() {}, nil
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return postgresql.NewScansRepository(pool, postgresql.NewTxManager(pool)), pool.Close, nil
}
