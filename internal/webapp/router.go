package webapp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/vulnscan/internal/domain"
)

type Backend interface {
	Scan(ctx context.Context, id string) (*domain.Scan, error)
	UploadScan(ctx context.Context, filename string, r io.Reader) (*domain.Scan, error)
	DeleteScan(ctx context.Context, id string) error
	GenerateScript(ctx context.Context, id string, serviceIndex int) (*Script, error)
}

type handler struct {
	log            *slog.Logger
	app            *App
	backend        Backend
	views          *Views
	maxUploadBytes int64
}

// NewRouter dispatches between the dashboard, upload and scan result views.
func NewRouter(log *slog.Logger, app *App, backend Backend, views *Views, maxUploadBytes int64) http.Handler {
	h := &handler{
		log:            log,
		app:            app,
		backend:        backend,
		views:          views,
		maxUploadBytes: maxUploadBytes,
	}

	r := chi.NewRouter()
	r.Get("/", h.dashboard)
	r.Get("/upload", h.uploadForm)
	r.Post("/upload", h.upload)
	r.Get("/scan/{scanId}", h.scanResults)
	r.Post("/scan/{scanId}/delete", h.deleteScan)
	r.Post("/scan/{scanId}/script", h.script)
	r.NotFound(h.notFound)

	return r
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageDashboard, DashboardProps{Scans: h.app.Scans()})
}

func (h *handler) uploadForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageUpload, UploadProps{Loading: h.app.Loading()})
}

func (h *handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.render(w, r, http.StatusBadRequest, pageUpload, UploadProps{
			Loading: h.app.Loading(),
			Error:   "Please choose an nmap XML report to upload.",
		})
		return
	}
	defer file.Close()

	h.app.SetLoading(true)
	scan, err := h.backend.UploadScan(r.Context(), header.Filename, file)
	h.app.SetLoading(false)

	if err != nil {
		h.log.WarnContext(r.Context(), "scan upload failed",
			slog.String("filename", header.Filename),
			slog.String("err", err.Error()),
		)

		h.render(w, r, uploadErrorStatus(err), pageUpload, UploadProps{
			Loading: h.app.Loading(),
			Error:   uploadErrorMessage(err),
		})
		return
	}

	h.app.OnScanComplete(r.Context())

	http.Redirect(w, r, "/scan/"+url.PathEscape(scan.ID), http.StatusSeeOther)
}

func (h *handler) scanResults(w http.ResponseWriter, r *http.Request) {
	scanID := chi.URLParam(r, "scanId")

	scan, err := h.backend.Scan(r.Context(), scanID)
	if err != nil {
		status, message := http.StatusBadGateway, "Failed to load scan results."
		if errors.Is(err, domain.ErrScanNotFound) {
			status, message = http.StatusNotFound, "Scan not found."
		} else {
			h.log.ErrorContext(r.Context(), "failed to load scan",
				slog.String("scan_id", scanID),
				slog.String("err", err.Error()),
			)
		}

		h.render(w, r, status, pageScanResults, ScanResultsProps{ScanID: scanID, Error: message})
		return
	}

	h.render(w, r, http.StatusOK, pageScanResults, ScanResultsProps{ScanID: scanID, Scan: scan})
}

func (h *handler) deleteScan(w http.ResponseWriter, r *http.Request) {
	scanID := chi.URLParam(r, "scanId")

	if err := h.backend.DeleteScan(r.Context(), scanID); err != nil && !errors.Is(err, domain.ErrScanNotFound) {
		h.log.ErrorContext(r.Context(), "failed to delete scan",
			slog.String("scan_id", scanID),
			slog.String("err", err.Error()),
		)
		h.render(w, r, http.StatusBadGateway, pageScanResults, ScanResultsProps{ScanID: scanID, Error: "Failed to delete scan."})
		return
	}

	h.app.FetchScans(r.Context())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) script(w http.ResponseWriter, r *http.Request) {
	scanID := chi.URLParam(r, "scanId")

	index, err := strconv.Atoi(r.URL.Query().Get("service_index"))
	if err != nil {
		h.render(w, r, http.StatusBadRequest, pageScanResults, ScanResultsProps{ScanID: scanID, Error: "Invalid service index."})
		return
	}

	script, err := h.backend.GenerateScript(r.Context(), scanID, index)
	if err != nil {
		status, message := http.StatusBadGateway, "Failed to generate patch script."
		var apiErr *APIError
		switch {
		case errors.Is(err, domain.ErrScanNotFound):
			status, message = http.StatusNotFound, "Scan not found."
		case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest:
			status, message = http.StatusBadRequest, "Invalid service index."
		}

		h.render(w, r, status, pageScanResults, ScanResultsProps{ScanID: scanID, Error: message})
		return
	}

	h.render(w, r, http.StatusOK, pageScript, ScriptProps{ScanID: scanID, ServiceIndex: index, Script: script})
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, pageNotFound, notFoundProps{Path: r.URL.Path})
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, page string, props any) {
	if err := h.views.Render(w, status, page, props); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render page",
			slog.String("page", page),
			slog.String("err", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func uploadErrorStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

func uploadErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Upload failed, please try again."
}
