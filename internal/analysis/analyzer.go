package analysis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/vulnscan/internal/domain"
	"github.com/kurochkinivan/vulnscan/internal/nmap"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

type Analyzer struct {
	log       *slog.Logger
	cveFinder CVEFinder
	advisor   Advisor
	workers   int
	now       func() time.Time
}

func NewAnalyzer(log *slog.Logger, cveFinder CVEFinder, advisor Advisor, workers int) *Analyzer {
	if workers < 1 {
		workers = defaultWorkers
	}

	return &Analyzer{
		log:       log,
		cveFinder: cveFinder,
		advisor:   advisor,
		workers:   workers,
		now:       time.Now,
	}
}

// Analyze parses an nmap XML report and enriches every detected service with
// known CVEs, a patch recommendation and a severity. Services keep the order
// in which they appear in the report.
func (a *Analyzer) Analyze(ctx context.Context, r io.Reader) (*domain.Scan, error) {
	findings, err := nmap.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedReport, err)
	}

	scan := &domain.Scan{
		ID:        uuid.NewString(),
		Timestamp: a.now(),
	}

	log := a.log.With(
		slog.String("scan_id", scan.ID),
		slog.Int("services_count", len(findings)),
	)

	log.InfoContext(ctx, "analyzing scan report")

	services := make([]*domain.Service, len(findings))

	erg, ctx := errgroup.WithContext(ctx)
	erg.SetLimit(a.workers)

	for i, finding := range findings {
		erg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			services[i] = a.enrich(ctx, finding)
			return nil
		})
	}

	if err := erg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to analyze services: %w", err)
	}

	scan.Services = services
	scan.Summary = domain.Summarize(services)

	log.InfoContext(ctx, "scan report analyzed",
		slog.Int("high_risk_count", scan.Summary.HighRiskCount),
		slog.Int("medium_risk_count", scan.Summary.MediumRiskCount),
		slog.Int("low_risk_count", scan.Summary.LowRiskCount),
	)

	return scan, nil
}

func (a *Analyzer) enrich(ctx context.Context, f domain.Finding) *domain.Service {
	cves := a.cveFinder.FindCVEs(ctx, f.Service, f.Version)
	recommendation := a.advisor.Recommend(ctx, f.Service, f.Version, cves)

	a.log.DebugContext(ctx, "service enriched",
		slog.String("ip", f.IP),
		slog.String("port", f.Port),
		slog.String("service", f.Service),
		slog.Int("cve_count", len(cves)),
	)

	return &domain.Service{
		IP:             f.IP,
		Port:           f.Port,
		Service:        f.Service,
		Version:        f.Version,
		Recommendation: recommendation,
		Severity:       domain.DetermineSeverity(f.Service, f.Version, len(cves)),
		CVEInfo:        cves,
	}
}
