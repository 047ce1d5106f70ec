package signalen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/delta10/signalen-console/util"
)

// TokenProvider supplies the bearer credential per call so the token never
// lives in package state.
type TokenProvider func() string

// Client talks to the private Signalen REST API. Every console operation
// that touches the system of record goes through here.
type Client struct {
	BaseURL string
	Token   TokenProvider
	Client  *http.Client
}

// New creates a Signalen client. baseURL points at the private API root,
// e.g. "https://api.meldingen.example/signals/v1/private".
func New(baseURL string, token TokenProvider) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ErrNoToken is returned before any network call when the server-held
// credential is absent.
var ErrNoToken = fmt.Errorf("signalen: API token is not configured")

// ErrNotFound marks an upstream 404.
var ErrNotFound = fmt.Errorf("signalen: resource not found")

// APIError is a non-2xx upstream response. The status code is forwarded to
// the browser; Message holds the upstream's parsed error text when the
// body was JSON.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("signalen: upstream error: status code %d: %s", e.StatusCode, e.Message)
}

func (c *Client) token() string {
	if c.Token == nil {
		return ""
	}
	return c.Token()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	token := c.token()
	if token == "" {
		return ErrNoToken
	}

	fullURL := c.BaseURL + path
	if len(query) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute %s request for %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body for %s: %w", path, err)
	}
	if len(bodyBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return nil
}

// readAPIError shapes a non-2xx response. Only JSON bodies are parsed for
// a message; HTML block pages and other noise stay opaque.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	if !util.IsJSONContentType(resp.Header.Get("Content-Type")) {
		return apiErr
	}

	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if jsonErr := json.Unmarshal(bodyBytes, &parsed); jsonErr == nil {
		switch {
		case parsed.Error != "":
			apiErr.Message = parsed.Error
		case parsed.Message != "":
			apiErr.Message = parsed.Message
		case parsed.Detail != "":
			apiErr.Message = parsed.Detail
		}
	}
	return apiErr
}
