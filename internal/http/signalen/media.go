package signalen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/delta10/signalen-console/internal/model"
	"github.com/delta10/signalen-console/util"
)

// UploadBlockedError marks an upstream rejection that did not come with a
// parseable body: typically an HTML block page from a WAF or size limit.
type UploadBlockedError struct {
	StatusCode int
}

func (e *UploadBlockedError) Error() string {
	return fmt.Sprintf("signalen: upload blocked by upstream, status code %d", e.StatusCode)
}

// MediaUploader posts files to the public media attachment endpoint, which
// lives outside the private API root and wants its own request shape.
type MediaUploader struct {
	UploadURL string
	Token     TokenProvider
	Client    *http.Client
}

func NewMediaUploader(uploadURL string, token TokenProvider) *MediaUploader {
	return &MediaUploader{
		UploadURL: uploadURL,
		Token:     token,
		Client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload rebuilds a single-file multipart form and forwards it. The extra
// headers satisfy the upstream's CSRF and referer checks, which otherwise
// answer with an HTML block page.
func (m *MediaUploader) Upload(ctx context.Context, filename string, file io.Reader) (*model.Attachment, error) {
	token := ""
	if m.Token != nil {
		token = m.Token()
	}
	if token == "" {
		return nil, ErrNoToken
	}

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload file %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.UploadURL, &form)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Referer", m.UploadURL)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := m.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute upload request: %w", err)
	}
	defer resp.Body.Close()

	isJSON := util.IsJSONContentType(resp.Header.Get("Content-Type"))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if !isJSON {
			return nil, &UploadBlockedError{StatusCode: resp.StatusCode}
		}
		return nil, readAPIError(resp)
	}
	if !isJSON {
		return nil, &UploadBlockedError{StatusCode: resp.StatusCode}
	}

	var attachment model.Attachment
	if err := json.NewDecoder(resp.Body).Decode(&attachment); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return &attachment, nil
}
