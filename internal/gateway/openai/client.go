package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "gpt-4"

	chatCompletionsPath = "/v1/chat/completions"

	recommendationMaxTokens   = 1000
	recommendationTemperature = 0.3
	scriptMaxTokens           = 800
	scriptTemperature         = 0.2
)

const (
	missingKeyRecommendation = "OpenAI API key not configured. Please set OPENAI_API_KEY environment variable."
	missingKeyScript         = "# OpenAI API key not configured"
)

var errNoChoices = errors.New("openai response has no choices")

type Client struct {
	log        *slog.Logger
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(log *slog.Logger, apiKey, model, baseURL string, httpClient *http.Client) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		log:        log,
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Recommend asks the model for patch guidance on a service. The returned
// text is always displayable: configuration and transport problems are
// reported inside it.
func (c *Client) Recommend(ctx context.Context, service, version string, cves []string) string {
	if c.apiKey == "" {
		return missingKeyRecommendation
	}

	cveText := "No known CVEs found"
	if len(cves) > 0 {
		cveText = strings.Join(cves, "\n")
	}

	content, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a cybersecurity expert specializing in vulnerability assessment and patch management."},
			{Role: "user", Content: recommendationPrompt(service, version, cveText)},
		},
		MaxTokens:   recommendationMaxTokens,
		Temperature: recommendationTemperature,
	})
	if err != nil {
		c.log.WarnContext(ctx, "failed to get recommendation",
			slog.String("service", service),
			slog.String("err", err.Error()),
		)
		return fmt.Sprintf("Error getting LLM recommendation: %v", err)
	}

	return content
}

// PatchScript asks the model for a shell script upgrading the service.
func (c *Client) PatchScript(ctx context.Context, service, version string) string {
	if c.apiKey == "" {
		return missingKeyScript
	}

	content, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a DevOps expert. Generate only shell script code."},
			{Role: "user", Content: scriptPrompt(service, version)},
		},
		MaxTokens:   scriptMaxTokens,
		Temperature: scriptTemperature,
	})
	if err != nil {
		c.log.WarnContext(ctx, "failed to generate patch script",
			slog.String("service", service),
			slog.String("err", err.Error()),
		)
		return fmt.Sprintf("# Error generating script: %v", err)
	}

	return content
}

func (c *Client) complete(ctx context.Context, body chatRequest) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	data, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if err := errors.Join(readErr, closeErr); err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var response chatResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errNoChoices
	}

	return response.Choices[0].Message.Content, nil
}

func recommendationPrompt(service, version, cves string) string {
	return fmt.Sprintf(`
You are a cybersecurity expert. Analyze the following service and provide detailed patch recommendations:

Service: %s
Version: %s
Known CVEs: %s

Please provide:
1. Security assessment
2. Specific patch/upgrade steps
3. Alternative security measures
4. Risk level explanation

Format your response in a clear, actionable manner.
`, service, version, cves)
}

func scriptPrompt(service, version string) string {
	return fmt.Sprintf(`
Generate a Linux shell script to patch/upgrade %s version %s.
The script should:
1. Check current version
2. Backup current configuration
3. Update/upgrade the service
4. Verify the update
5. Include error handling

Provide only the shell script code, no explanations.
`, service, version)
}
