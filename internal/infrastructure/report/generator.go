package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kurochkinivan/vulnscan/internal/domain"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPDF, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport writes scan in the requested format to w.
func (g *Generator) GenerateReport(w io.Writer, format Format, scan *domain.Scan) error {
	switch format {
	case FormatPDF:
		return g.pdf(w, scan)
	case FormatCSV:
		return g.csv(w, scan)
	case FormatXLSX:
		return g.xlsx(w, scan)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

type serviceRecord struct {
	IP             string `csv:"ip"`
	Port           string `csv:"port"`
	Service        string `csv:"service"`
	Version        string `csv:"version"`
	Severity       string `csv:"severity"`
	CVECount       int    `csv:"cve_count"`
	CVEs           string `csv:"cves"`
	Recommendation string `csv:"recommendation"`
}

func (r serviceRecord) values() []any {
	return []any{r.IP, r.Port, r.Service, r.Version, r.Severity, r.CVECount, r.CVEs, r.Recommendation}
}

var recordHeader = []any{"IP", "Port", "Service", "Version", "Severity", "CVE count", "CVEs", "Recommendation"}

func records(scan *domain.Scan) []serviceRecord {
	rs := make([]serviceRecord, 0, len(scan.Services))
	for _, s := range scan.Services {
		rs = append(rs, serviceRecord{
			IP:             s.IP,
			Port:           s.Port,
			Service:        s.Service,
			Version:        s.Version,
			Severity:       string(s.Severity),
			CVECount:       len(s.CVEInfo),
			CVEs:           strings.Join(s.CVEInfo, "\n"),
			Recommendation: s.Recommendation,
		})
	}
	return rs
}

func summaryLine(scan *domain.Scan) string {
	return "Services: " + strconv.Itoa(scan.Summary.TotalServices) +
		"  High: " + strconv.Itoa(scan.Summary.HighRiskCount) +
		"  Medium: " + strconv.Itoa(scan.Summary.MediumRiskCount) +
		"  Low: " + strconv.Itoa(scan.Summary.LowRiskCount)
}
