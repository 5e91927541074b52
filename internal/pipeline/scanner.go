package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const reportExt = ".xml"

// Scanner polls the watch directory and hands every new nmap XML report to
// the importer. A file is sent once for as long as it stays in the directory
// under the same name.
type Scanner struct {
	log          *slog.Logger
	watchDir     string
	scanInterval time.Duration
	files        chan<- string
	sent         map[string]struct{}
}

func NewScanner(log *slog.Logger, watchDir string, scanInterval time.Duration, files chan<- string) *Scanner {
	return &Scanner{
		log:          log,
		watchDir:     watchDir,
		scanInterval: scanInterval,
		files:        files,
		sent:         make(map[string]struct{}),
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			if err := s.scanFiles(ctx); err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	present := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), reportExt) {
			continue
		}

		present[entry.Name()] = struct{}{}

		if _, ok := s.sent[entry.Name()]; ok {
			continue
		}

		select {
		case s.files <- filepath.Join(s.watchDir, entry.Name()):
			s.sent[entry.Name()] = struct{}{}
			s.log.DebugContext(ctx, "found new report", slog.String("filename", entry.Name()))
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	// Forget files that were renamed or removed so a new upload under the
	// same name is picked up again.
	for name := range s.sent {
		if _, ok := present[name]; !ok {
			delete(s.sent, name)
		}
	}

	return nil
}
