package signalen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/delta10/signalen-console/internal/model"
	"github.com/google/go-querystring/query"
)

// ListSignals fetches the first upstream page of signals and coerces the
// paginated envelope into a plain slice.
func (c *Client) ListSignals(ctx context.Context) ([]model.Signal, error) {
	var envelope model.PaginatedResponse[model.Signal]
	if err := c.do(ctx, http.MethodGet, "/signals/", nil, nil, "", &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// GetSignal fetches one signal by its path identifier.
func (c *Client) GetSignal(ctx context.Context, id string) (*model.Signal, error) {
	var signal model.Signal
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/signals/%s", url.PathEscape(id)), nil, nil, "", &signal); err != nil {
		return nil, err
	}
	return &signal, nil
}

// PatchSignal sends a partial update. The upstream usually answers with a
// fresh snapshot; some deployments answer with an empty body, in which
// case the returned signal is nil and the caller reconstructs locally.
func (c *Client) PatchSignal(ctx context.Context, id string, patch model.SignalPatch) (*model.Signal, error) {
	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch for signal %s: %w", id, err)
	}

	var updated model.Signal
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/signals/%s", url.PathEscape(id)), nil, bytes.NewReader(body), "application/json", &updated); err != nil {
		return nil, err
	}
	if updated.ID == 0 && updated.Status.State == "" {
		return nil, nil
	}
	return &updated, nil
}

// GetHistory fetches the append-only history list for one signal.
func (c *Client) GetHistory(ctx context.Context, id string) ([]model.HistoryEntry, error) {
	var history []model.HistoryEntry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/signals/%s/history", url.PathEscape(id)), nil, nil, "", &history); err != nil {
		return nil, err
	}
	return history, nil
}

// GetContext fetches the nearby/reporter summary for one signal.
func (c *Client) GetContext(ctx context.Context, id string) (*model.ContextData, error) {
	var data model.ContextData
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/signals/%s/context", url.PathEscape(id)), nil, nil, "", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListReporters fetches the reporters related to one signal.
func (c *Client) ListReporters(ctx context.Context, id string) ([]model.RelatedReporter, error) {
	var envelope model.PaginatedResponse[model.RelatedReporter]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/signals/%s/reporters", url.PathEscape(id)), nil, nil, "", &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

type statusMessagesParams struct {
	Ordering   string `url:"ordering"`
	CategoryID string `url:"category_id,omitempty"`
}

// ListStatusMessages fetches the status catalog, scoped to a category when
// categoryID is non-empty.
func (c *Client) ListStatusMessages(ctx context.Context, categoryID string) ([]model.StatusMessage, error) {
	params, err := query.Values(statusMessagesParams{
		Ordering:   "statusmessagecategory__position",
		CategoryID: categoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode status messages query: %w", err)
	}

	var envelope model.PaginatedResponse[model.StatusMessage]
	if err := c.do(ctx, http.MethodGet, "/status-messages/", params, nil, "", &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

type usernamesParams struct {
	IsActive       bool   `url:"is_active"`
	DepartmentCode string `url:"profile_department_code,omitempty"`
}

// ListUsernames fetches active usernames for the assignment autocomplete.
func (c *Client) ListUsernames(ctx context.Context, departmentCode string) ([]model.AutocompleteUser, error) {
	params, err := query.Values(usernamesParams{
		IsActive:       true,
		DepartmentCode: departmentCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode usernames query: %w", err)
	}

	var envelope model.PaginatedResponse[model.AutocompleteUser]
	if err := c.do(ctx, http.MethodGet, "/autocomplete/usernames/", params, nil, "", &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}
