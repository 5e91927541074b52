package domain

import (
	"errors"
	"time"
)

var (
	ErrScanNotFound        = errors.New("scan not found")
	ErrInvalidServiceIndex = errors.New("invalid service index")
)

type Service struct {
	IP             string   `db:"ip"             json:"ip"`
	Port           string   `db:"port"           json:"port"`
	Service        string   `db:"service"        json:"service"`
	Version        string   `db:"version"        json:"version"`
	Recommendation string   `db:"recommendation" json:"recommendation"`
	Severity       Severity `db:"severity"       json:"severity"`
	CVEInfo        []string `db:"cve_info"       json:"cve_info"`
}

type Scan struct {
	ID        string     `json:"scan_id"`
	Timestamp time.Time  `json:"timestamp"`
	Services  []*Service `json:"services"`
	Summary   Summary    `json:"summary"`
}

// Service returns the service at index i of the scan.
func (s *Scan) Service(i int) (*Service, error) {
	if i < 0 || i >= len(s.Services) {
		return nil, ErrInvalidServiceIndex
	}
	return s.Services[i], nil
}

// ScanSummary is the list view of a scan.
type ScanSummary struct {
	ID        string    `db:"id"         json:"scan_id"`
	Timestamp time.Time `db:"created_at" json:"timestamp"`
	Summary   Summary   `db:"-"          json:"summary"`
}

var ErrMalformedReport = errors.New("malformed scan report")
