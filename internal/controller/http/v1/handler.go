package v1

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/vulnscan/internal/domain"
	"github.com/kurochkinivan/vulnscan/internal/infrastructure/report"
)

type ScansRepository interface {
	SaveScan(ctx context.Context, scan *domain.Scan) error
	Scans(ctx context.Context) ([]*domain.ScanSummary, error)
	ScanByID(ctx context.Context, id string) (*domain.Scan, error)
	DeleteScan(ctx context.Context, id string) error
}

type Analyzer interface {
	Analyze(ctx context.Context, r io.Reader) (*domain.Scan, error)
}

type ScriptGenerator interface {
	PatchScript(ctx context.Context, service, version string) string
}

type ReportGenerator interface {
	GenerateReport(w io.Writer, format report.Format, scan *domain.Scan) error
}

type ScansHandler struct {
	log             *slog.Logger
	scansRepository ScansRepository
	analyzer        Analyzer
	scriptGenerator ScriptGenerator
	reportGenerator ReportGenerator
	maxUploadBytes  int64
}

func NewScansHandler(
	log *slog.Logger,
	scansRepository ScansRepository,
	analyzer Analyzer,
	scriptGenerator ScriptGenerator,
	reportGenerator ReportGenerator,
	maxUploadBytes int64,
) *ScansHandler {
	return &ScansHandler{
		log:             log,
		scansRepository: scansRepository,
		analyzer:        analyzer,
		scriptGenerator: scriptGenerator,
		reportGenerator: reportGenerator,
		maxUploadBytes:  maxUploadBytes,
	}
}

type ParseScanResponse struct {
	Status    string            `json:"status"`
	ScanID    string            `json:"scan_id"`
	Timestamp time.Time         `json:"timestamp"`
	Services  []*domain.Service `json:"services"`
	Summary   domain.Summary    `json:"summary"`
}

func (h *ScansHandler) ParseScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(header.Filename, ".xml") {
		writeError(w, http.StatusBadRequest, "File must be an XML file")
		return
	}

	log := h.log.With(slog.String("filename", header.Filename), slog.Int64("size", header.Size))

	scan, err := h.analyzer.Analyze(r.Context(), file)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedReport) {
			log.WarnContext(r.Context(), "rejected malformed scan report", slog.String("err", err.Error()))
			writeError(w, http.StatusBadRequest, "Failed to parse XML: "+err.Error())
			return
		}

		log.ErrorContext(r.Context(), "failed to analyze scan report", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Processing failed: "+err.Error())
		return
	}

	if err := h.scansRepository.SaveScan(r.Context(), scan); err != nil {
		log.ErrorContext(r.Context(), "failed to save scan", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Processing failed: "+err.Error())
		return
	}

	log.InfoContext(r.Context(), "scan stored", slog.String("scan_id", scan.ID))

	writeJSON(w, http.StatusOK, ParseScanResponse{
		Status:    "success",
		ScanID:    scan.ID,
		Timestamp: scan.Timestamp,
		Services:  scan.Services,
		Summary:   scan.Summary,
	})
}

type ListScansResponse struct {
	Scans []*domain.ScanSummary `json:"scans"`
}

func (h *ScansHandler) ListScans(w http.ResponseWriter, r *http.Request) {
	scans, err := h.scansRepository.Scans(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if scans == nil {
		scans = []*domain.ScanSummary{}
	}

	writeJSON(w, http.StatusOK, ListScansResponse{Scans: scans})
}

func (h *ScansHandler) GetScan(w http.ResponseWriter, r *http.Request) {
	scan, ok := h.scanByID(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, scan)
}

type StatusResponse struct {
	Status string `json:"status"`
}

func (h *ScansHandler) DeleteScan(w http.ResponseWriter, r *http.Request) {
	scanID := chi.URLParam(r, "scan_id")

	err := h.scansRepository.DeleteScan(r.Context(), scanID)
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			writeError(w, http.StatusNotFound, "Scan not found")
			return
		}

		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.InfoContext(r.Context(), "scan deleted", slog.String("scan_id", scanID))

	writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

type GenerateScriptResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Script  string `json:"script"`
}

func (h *ScansHandler) GenerateScript(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.URL.Query().Get("service_index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid service index")
		return
	}

	scan, ok := h.scanByID(w, r)
	if !ok {
		return
	}

	service, err := scan.Service(index)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid service index")
		return
	}

	writeJSON(w, http.StatusOK, GenerateScriptResponse{
		Service: service.Service,
		Version: service.Version,
		Script:  h.scriptGenerator.PatchScript(r.Context(), service.Service, service.Version),
	})
}

func (h *ScansHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scan, ok := h.scanByID(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.reportGenerator.GenerateReport(&buf, format, scan); err != nil {
		h.log.ErrorContext(r.Context(), "failed to generate report",
			slog.String("scan_id", scan.ID),
			slog.String("format", string(format)),
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="scan-`+scan.ID+`.`+string(format)+`"`)
	w.Write(buf.Bytes())
}

func (h *ScansHandler) scanByID(w http.ResponseWriter, r *http.Request) (*domain.Scan, bool) {
	scan, err := h.scansRepository.ScanByID(r.Context(), chi.URLParam(r, "scan_id"))
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			writeError(w, http.StatusNotFound, "Scan not found")
			return nil, false
		}

		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}

	return scan, true
}
