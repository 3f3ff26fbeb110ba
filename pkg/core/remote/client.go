// Package remote recomputes a strategy worksheet against the server when one
// is configured. The server path is strictly optional: any failure (no base
// URL, network error, bad status, bad body) falls back to the local
// calculators, and callers keep showing last-known-good numbers.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/strategy"
	"deal_analyzer/pkg/core/worksheet"
)

// Client talks to the worksheet calculate endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New builds a client for the given base URL. Empty means local-only.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type calculateResponse struct {
	Strategy strategy.Name      `json:"strategy"`
	Result   map[string]float64 `json:"result"`
}

// Recalculate returns the flattened result for one strategy, preferring the
// server's answer. The second return reports whether the numbers came from
// the server; false means the local fallback was used.
func (c *Client) Recalculate(ctx context.Context, name strategy.Name, a assumption.Assumptions) (map[string]float64, bool) {
	local := worksheet.Flatten(name, a)
	if c == nil || c.BaseURL == "" {
		return local, false
	}

	remote, err := c.post(ctx, name, a)
	if err != nil {
		zap.L().Warn("remote: recompute failed, using local result",
			zap.String("strategy", string(name)), zap.Error(err))
		return local, false
	}
	return remote, true
}

func (c *Client) post(ctx context.Context, name strategy.Name, a assumption.Assumptions) (map[string]float64, error) {
	body, err := json.Marshal(worksheet.FromAssumptions(a))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/worksheet/%s/calculate", c.BaseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("post %s: status %d", url, resp.StatusCode)
	}

	var parsed calculateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Result == nil {
		return nil, fmt.Errorf("decode response: missing result")
	}
	return parsed.Result, nil
}
