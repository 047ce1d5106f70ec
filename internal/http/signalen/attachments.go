package signalen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/delta10/signalen-console/internal/model"
)

// ListAttachments fetches the attachments of one signal.
func (c *Client) ListAttachments(ctx context.Context, id string) ([]model.Attachment, error) {
	var envelope model.PaginatedResponse[model.Attachment]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/signals/%s/attachments/", url.PathEscape(id)), nil, nil, "", &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// UploadAttachment re-streams a multipart form body to the upstream
// attachment endpoint. contentType must be the original multipart
// Content-Type header, boundary included.
func (c *Client) UploadAttachment(ctx context.Context, id string, contentType string, body io.Reader) (*model.Attachment, error) {
	var attachment model.Attachment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/signals/%s/attachments/", url.PathEscape(id)), nil, body, contentType, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// DeleteAttachment removes one attachment by the identifier recovered via
// model.Attachment.ResolveID.
func (c *Client) DeleteAttachment(ctx context.Context, id, attachmentID string) error {
	path := fmt.Sprintf("/signals/%s/attachments/%s/", url.PathEscape(id), url.PathEscape(attachmentID))
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}
