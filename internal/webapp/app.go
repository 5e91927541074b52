package webapp

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/kurochkinivan/vulnscan/internal/domain"
)

type ScansFetcher interface {
	Scans(ctx context.Context) ([]*domain.ScanSummary, error)
}

// App owns the view state shared by the web views: the list of scans shown on
// the dashboard and the upload-in-progress flag.
type App struct {
	log     *slog.Logger
	fetcher ScansFetcher

	mu       sync.RWMutex
	scans    []*domain.ScanSummary
	loading  bool
	issued   uint64
	applied  uint64
	lifetime context.Context
	cancel   context.CancelFunc
	torndown bool

	wg sync.WaitGroup
}

func NewApp(log *slog.Logger, fetcher ScansFetcher) *App {
	return &App{
		log:      log,
		fetcher:  fetcher,
		scans:    []*domain.ScanSummary{},
		lifetime: context.Background(),
	}
}

// Mount starts the initial scan list fetch in the background and returns
// immediately. The fetch is bound to ctx and to the App lifetime.
func (a *App) Mount(ctx context.Context) {
	a.mu.Lock()
	a.lifetime, a.cancel = context.WithCancel(ctx)
	lifetime := a.lifetime
	a.mu.Unlock()

	a.log.DebugContext(ctx, "app mounted, fetching scans")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.FetchScans(lifetime)
	}()
}

// Unmount cancels in-flight fetches and waits for the initial one to return.
// State is frozen afterwards.
func (a *App) Unmount() {
	a.mu.Lock()
	a.torndown = true
	if a.cancel != nil {
		a.cancel()
	}
	a.mu.Unlock()

	a.wg.Wait()
}

// FetchScans replaces the scan list with the backend's current one. Any
// failure is logged and leaves an empty list.
func (a *App) FetchScans(ctx context.Context) {
	a.mu.Lock()
	a.issued++
	seq := a.issued
	lifetime := a.lifetime
	a.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(lifetime, cancel)
	defer stop()

	scans, err := a.fetcher.Scans(ctx)
	if err != nil {
		a.log.ErrorContext(ctx, "error fetching scans", slog.String("err", err.Error()))
		scans = nil
	}
	if scans == nil {
		scans = []*domain.ScanSummary{}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.torndown {
		a.log.DebugContext(ctx, "app unmounted, dropping fetched scans")
		return
	}

	if seq < a.applied {
		a.log.DebugContext(ctx, "newer scan list already applied, dropping stale fetch")
		return
	}

	a.applied = seq
	a.scans = scans
}

// OnScanComplete is invoked by the upload view after a scan was submitted.
func (a *App) OnScanComplete(ctx context.Context) {
	a.FetchScans(ctx)
}

func (a *App) Scans() []*domain.ScanSummary {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.scans)
}

func (a *App) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.loading
}

func (a *App) SetLoading(loading bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.loading = loading
}
