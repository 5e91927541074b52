package nvd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultBaseURL = "https://services.nvd.nist.gov"

	cvesPath          = "/rest/json/cves/2.0"
	resultsPerPage    = 5
	descriptionLength = 100
)

type Client struct {
	log        *slog.Logger
	baseURL    string
	httpClient *http.Client
}

func NewClient(log *slog.Logger, baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		log:        log,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type cvesResponse struct {
	Vulnerabilities []struct {
		CVE struct {
			ID           string `json:"id"`
			Descriptions []struct {
				Lang  string `json:"lang"`
				Value string `json:"value"`
			} `json:"descriptions"`
		} `json:"cve"`
	} `json:"vulnerabilities"`
}

// FindCVEs searches NVD by keyword and returns short "ID: description..."
// lines. Lookup failures are logged and yield an empty result.
func (c *Client) FindCVEs(ctx context.Context, service, version string) []string {
	cves, err := c.findCVEs(ctx, service, version)
	if err != nil {
		c.log.DebugContext(ctx, "cve lookup failed",
			slog.String("service", service),
			slog.String("version", version),
			slog.String("err", err.Error()),
		)
		return []string{}
	}

	return cves
}

func (c *Client) findCVEs(ctx context.Context, service, version string) ([]string, error) {
	query := url.Values{}
	query.Set("keywordSearch", service+" "+version)
	query.Set("resultsPerPage", strconv.Itoa(resultsPerPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+cvesPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var data cvesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	cves := make([]string, 0, len(data.Vulnerabilities))
	for _, v := range data.Vulnerabilities {
		var description string
		if len(v.CVE.Descriptions) > 0 {
			description = v.CVE.Descriptions[0].Value
		}

		cves = append(cves, fmt.Sprintf("%s: %s...", v.CVE.ID, truncate(description, descriptionLength)))
	}

	return cves, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
