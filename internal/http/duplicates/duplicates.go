package duplicates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/delta10/signalen-console/internal/model"
)

// Client talks to the companion duplicate-detection service, which embeds
// signal texts and reports pairs above a similarity threshold.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		// Embedding runs are slow on a cold cache.
		Client: &http.Client{Timeout: 120 * time.Second},
	}
}

type duplicatesResponse struct {
	Count            int               `json:"count"`
	SignalsProcessed int               `json:"signals_processed"`
	Results          []model.Duplicate `json:"results"`
}

// ListDuplicates fetches all suspected duplicate pairs.
func (c *Client) ListDuplicates(ctx context.Context) ([]model.Duplicate, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("duplicates: service URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/duplicates/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create duplicates request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute duplicates request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read duplicates response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duplicates service error: status code %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed duplicatesResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode duplicates response: %w", err)
	}
	return parsed.Results, nil
}
