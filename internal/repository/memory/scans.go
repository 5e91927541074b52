package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/kurochkinivan/vulnscan/internal/domain"
)

// ScansRepository keeps scans in process memory in insertion order.
type ScansRepository struct {
	mu    sync.RWMutex
	order []string
	scans map[string]*domain.Scan
}

func NewScansRepository() *ScansRepository {
	return &ScansRepository{
		scans: make(map[string]*domain.Scan),
	}
}

func (r *ScansRepository) SaveScan(_ context.Context, scan *domain.Scan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scans[scan.ID]; !ok {
		r.order = append(r.order, scan.ID)
	}
	r.scans[scan.ID] = scan

	return nil
}

func (r *ScansRepository) Scans(_ context.Context) ([]*domain.ScanSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]*domain.ScanSummary, 0, len(r.order))
	for _, id := range r.order {
		scan := r.scans[id]
		summaries = append(summaries, &domain.ScanSummary{
			ID:        scan.ID,
			Timestamp: scan.Timestamp,
			Summary:   scan.Summary,
		})
	}

	return summaries, nil
}

func (r *ScansRepository) ScanByID(_ context.Context, id string) (*domain.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scan, ok := r.scans[id]
	if !ok {
		return nil, domain.ErrScanNotFound
	}

	return scan, nil
}

func (r *ScansRepository) DeleteScan(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scans[id]; !ok {
		return domain.ErrScanNotFound
	}

	delete(r.scans, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })

	return nil
}
