package webapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kurochkinivan/vulnscan/internal/domain"
)

// APIError is a non-2xx answer of the scan API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scan api status %d: %s", e.StatusCode, e.Detail)
}

// APIClient talks to the scan API over HTTP.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type scansResponse struct {
	Scans []*domain.ScanSummary `json:"scans"`
}

// Scans reads GET /api/scans. A body without a scans field yields an empty
// list.
func (c *APIClient) Scans(ctx context.Context) ([]*domain.ScanSummary, error) {
	var resp scansResponse
	if err := c.do(ctx, http.MethodGet, "/api/scans", nil, "", &resp); err != nil {
		return nil, err
	}

	if resp.Scans == nil {
		return []*domain.ScanSummary{}, nil
	}

	return resp.Scans, nil
}

func (c *APIClient) Scan(ctx context.Context, id string) (*domain.Scan, error) {
	var scan domain.Scan
	if err := c.do(ctx, http.MethodGet, "/api/scan/"+url.PathEscape(id), nil, "", &scan); err != nil {
		return nil, notFound(err)
	}

	return &scan, nil
}

func (c *APIClient) DeleteScan(ctx context.Context, id string) error {
	return notFound(c.do(ctx, http.MethodDelete, "/api/scan/"+url.PathEscape(id), nil, "", nil))
}

type Script struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Script  string `json:"script"`
}

func (c *APIClient) GenerateScript(ctx context.Context, id string, serviceIndex int) (*Script, error) {
	path := "/api/generate-script/" + url.PathEscape(id) + "?service_index=" + strconv.Itoa(serviceIndex)

	var script Script
	if err := c.do(ctx, http.MethodPost, path, nil, "", &script); err != nil {
		return nil, notFound(err)
	}

	return &script, nil
}

// UploadScan submits an nmap report to POST /api/parse-scan.
func (c *APIClient) UploadScan(ctx context.Context, filename string, r io.Reader) (*domain.Scan, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(fw, r); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	var scan domain.Scan
	if err := c.do(ctx, http.MethodPost, "/api/parse-scan", &body, mw.FormDataContentType(), &scan); err != nil {
		return nil, err
	}

	return &scan, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		apiErr.Detail = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(data, &body) == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	} else {
		apiErr.Detail = strings.TrimSpace(string(data))
	}

	return apiErr
}

func notFound(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrScanNotFound, apiErr.Detail)
	}
	return err
}
