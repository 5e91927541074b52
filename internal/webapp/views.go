package webapp

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/kurochkinivan/vulnscan/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageDashboard   = "dashboard"
	pageUpload      = "upload"
	pageScanResults = "scan"
	pageScript      = "script"
	pageNotFound    = "notfound"
)

var pages = []string{pageDashboard, pageUpload, pageScanResults, pageScript, pageNotFound}

var funcs = template.FuncMap{
	"timestamp": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("2006-01-02 15:04:05")
	},
	"severityClass": func(s domain.Severity) string {
		return "severity-" + strings.ToLower(string(s))
	},
}

type DashboardProps struct {
	Scans []*domain.ScanSummary
}

type UploadProps struct {
	Loading bool
	Error   string
}

type ScanResultsProps struct {
	ScanID string
	Scan   *domain.Scan
	Error  string
}

type ScriptProps struct {
	ScanID       string
	ServiceIndex int
	Script       *Script
}

type notFoundProps struct {
	Path string
}

// Views renders the HTML pages. Every page shares the layout and navbar.
type Views struct {
	templates map[string]*template.Template
}

func NewViews() (*Views, error) {
	v := &Views{templates: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/navbar.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}

		v.templates[page] = t
	}

	return v, nil
}

func (v *Views) Render(w http.ResponseWriter, status int, page string, props any) error {
	t, ok := v.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, props); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)

	return nil
}
