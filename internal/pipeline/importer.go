package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kurochkinivan/vulnscan/internal/domain"
)

const (
	importedSuffix = ".imported"
	failedSuffix   = ".failed"
)

// Importer analyzes and stores the reports found by the scanner. Each
// processed file is renamed with an .imported or .failed suffix.
type Importer struct {
	log      *slog.Logger
	files    <-chan string
	imported chan<- *domain.ImportResult
	analyzer ScanAnalyzer
	saver    ScanSaver
}

func NewImporter(
	log *slog.Logger,
	files <-chan string,
	imported chan<- *domain.ImportResult,
	analyzer ScanAnalyzer,
	saver ScanSaver,
) *Importer {
	return &Importer{
		log:      log,
		files:    files,
		imported: imported,
		analyzer: analyzer,
		saver:    saver,
	}
}

func (i *Importer) Run(ctx context.Context) error {
	defer close(i.imported)

	for {
		select {
		case filename, ok := <-i.files:
			if !ok {
				return nil
			}

			log := i.log.With(slog.String("filename", filename))

			log.InfoContext(ctx, "importing report")

			scan, err := i.importFile(ctx, filename)
			if markErr := markFile(filename, err); markErr != nil {
				log.ErrorContext(ctx, "failed to mark report file", slog.String("err", markErr.Error()))
			}
			if err != nil {
				log.ErrorContext(ctx, "failed to import report", slog.String("err", err.Error()))
				continue
			}

			log.InfoContext(ctx, "report imported",
				slog.String("scan_id", scan.ID),
				slog.Int("services_count", len(scan.Services)),
			)

			select {
			case i.imported <- &domain.ImportResult{Filename: filename, Scan: scan}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (i *Importer) importFile(ctx context.Context, filename string) (_ *domain.Scan, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	scan, err := i.analyzer.Analyze(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze report: %w", err)
	}

	if err := i.saver.SaveScan(ctx, scan); err != nil {
		return nil, fmt.Errorf("failed to save scan: %w", err)
	}

	return scan, nil
}

func markFile(filename string, importErr error) error {
	suffix := importedSuffix
	if importErr != nil {
		suffix = failedSuffix
	}

	return os.Rename(filename, filename+suffix)
}
