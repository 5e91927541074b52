package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/vulnscan/internal/domain"
	"github.com/kurochkinivan/vulnscan/internal/infrastructure/report"
)

// Reporter writes report files for imported scans into outputDir, one per
// format, and notifies listener. An empty outputDir disables the files.
type Reporter struct {
	log             *slog.Logger
	outputDir       string
	formats         []report.Format
	imported        <-chan *domain.ImportResult
	reportGenerator ReportGenerator
	listener        ScanListener
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	formats []report.Format,
	imported <-chan *domain.ImportResult,
	reportGenerator ReportGenerator,
	listener ScanListener,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		formats:         formats,
		imported:        imported,
		reportGenerator: reportGenerator,
		listener:        listener,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.imported:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("filename", result.Filename),
				slog.String("scan_id", result.Scan.ID),
			)

			if r.outputDir != "" {
				log.InfoContext(ctx, "generating reports")

				if err := r.writeReports(result.Scan); err != nil {
					log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
				}
			}

			if r.listener != nil {
				r.listener.OnScanComplete(ctx)
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) writeReports(scan *domain.Scan) error {
	for _, format := range r.formats {
		path := filepath.Join(r.outputDir, scan.ID+"."+string(format))

		if err := r.writeReport(path, format, scan); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
	}

	return nil
}

func (r *Reporter) writeReport(path string, format report.Format, scan *domain.Scan) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return r.reportGenerator.GenerateReport(f, format, scan)
}
