package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/vulnscan/internal/domain"
	"github.com/kurochkinivan/vulnscan/internal/infrastructure/report"
)

type ScanAnalyzer interface {
	Analyze(ctx context.Context, r io.Reader) (*domain.Scan, error)
}

type ScanSaver interface {
	SaveScan(ctx context.Context, scan *domain.Scan) error
}

type ReportGenerator interface {
	GenerateReport(w io.Writer, format report.Format, scan *domain.Scan) error
}

type ScanListener interface {
	OnScanComplete(ctx context.Context)
}
