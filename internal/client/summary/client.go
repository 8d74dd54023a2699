package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/standup/internal/logging"
)

var ErrSummaryFailed = errors.New("failed to generate standup summary")

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-1.5-flash"
)

type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
}

func NewClient(endpoint, model, apiKey string, httpClient *http.Client, l logging.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if model == "" {
		model = DefaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		model:      model,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     l.With("module", "summary"),
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt in a single request and returns the generated text
// verbatim. Every failure is reported as ErrSummaryFailed.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn(ctx, "summary request failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrSummaryFailed, err)
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("response has no generated text")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
