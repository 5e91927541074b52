package webapp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kurochkinivan/vulnscan/internal/domain"
)

// fakeAPI is an in-process scan API with request counters.
type fakeAPI struct {
	server *httptest.Server

	scansHits  atomic.Int32
	uploads    atomic.Int32
	deletes    atomic.Int32
	detailHits atomic.Int32

	mu          sync.Mutex
	scansBody   string
	scansStatus int
	scans       map[string]*domain.Scan
	uploadErr   int
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{
		scansBody:   `{"scans":[]}`,
		scansStatus: http.StatusOK,
		scans:       make(map[string]*domain.Scan),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/scans", api.listScans)
	mux.HandleFunc("GET /api/scan/{id}", api.getScan)
	mux.HandleFunc("DELETE /api/scan/{id}", api.deleteScan)
	mux.HandleFunc("POST /api/parse-scan", api.parseScan)
	mux.HandleFunc("POST /api/generate-script/{id}", api.generateScript)

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)

	return api
}

func (a *fakeAPI) URL() string {
	return a.server.URL
}

func (a *fakeAPI) setScans(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.scansStatus = status
	a.scansBody = body
}

func (a *fakeAPI) addScan(scan *domain.Scan) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.scans[scan.ID] = scan
}

func (a *fakeAPI) failUploads(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.uploadErr = status
}

func (a *fakeAPI) listScans(w http.ResponseWriter, _ *http.Request) {
	a.scansHits.Add(1)

	a.mu.Lock()
	status, body := a.scansStatus, a.scansBody
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (a *fakeAPI) getScan(w http.ResponseWriter, r *http.Request) {
	a.detailHits.Add(1)

	a.mu.Lock()
	scan, ok := a.scans[r.PathValue("id")]
	a.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Scan not found")
		return
	}

	_ = json.NewEncoder(w).Encode(scan)
}

func (a *fakeAPI) deleteScan(w http.ResponseWriter, r *http.Request) {
	a.deletes.Add(1)

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.scans[r.PathValue("id")]; !ok {
		writeDetail(w, http.StatusNotFound, "Scan not found")
		return
	}
	delete(a.scans, r.PathValue("id"))

	_, _ = w.Write([]byte(`{"status":"deleted"}`))
}

func (a *fakeAPI) parseScan(w http.ResponseWriter, r *http.Request) {
	a.uploads.Add(1)

	a.mu.Lock()
	uploadErr := a.uploadErr
	a.mu.Unlock()

	if uploadErr != 0 {
		writeDetail(w, uploadErr, "File must be an XML file")
		return
	}

	_, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "file is required")
		return
	}

	scan := &domain.Scan{ID: "new-" + header.Filename, Timestamp: time.Now()}
	a.addScan(scan)

	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "success",
		"scan_id":   scan.ID,
		"timestamp": scan.Timestamp,
		"services":  []any{},
		"summary":   map[string]any{"total_services": 0},
	})
}

func (a *fakeAPI) generateScript(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	_, ok := a.scans[r.PathValue("id")]
	a.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Scan not found")
		return
	}

	if r.URL.Query().Get("service_index") != "0" {
		writeDetail(w, http.StatusBadRequest, "Invalid service index")
		return
	}

	_, _ = w.Write([]byte(`{"service":"ssh","version":"7.4","script":"#!/bin/sh\necho patched"}`))
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
