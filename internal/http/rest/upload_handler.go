package rest

import (
	"net/http"

	"github.com/delta10/signalen-console/internal/http/signalen"
	"github.com/delta10/signalen-console/internal/model"
	"github.com/delta10/signalen-console/util"
	"github.com/delta10/signalen-console/util/tracing"
	"github.com/delta10/signalen-console/util/values"
	"github.com/pkg/errors"
)

const maxUploadMemory = 32 << 20

type uploadResult struct {
	Success     bool               `json:"success"`
	Attachments []model.Attachment `json:"attachments"`
	Failed      []string           `json:"failed,omitempty"`
}

// UploadMedia forwards files from the browser to the media upload
// endpoint. Multiple files are uploaded best effort: files that succeed
// are reported alongside the names of those that did not, and the call
// only fails outright when nothing was uploaded.
func (api *API) UploadMedia(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())
	if resp := api.requireToken(tc); resp != nil {
		return resp
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return api.respondWithError(err, values.MsgNoFileProvided, values.BadRequestBody, tc)
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["file"]) == 0 {
		return api.respondWithError(errors.New("no file field in multipart body"), values.MsgNoFileProvided, values.BadRequestBody, tc)
	}

	result := uploadResult{Attachments: []model.Attachment{}}
	var firstErr error
	for _, header := range r.MultipartForm.File["file"] {
		file, err := header.Open()
		if err != nil {
			result.Failed = append(result.Failed, header.Filename)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		attachment, err := api.Deps.Media.Upload(r.Context(), header.Filename, file)
		file.Close()
		if err != nil {
			api.Logger.WithError(err).WithField("filename", header.Filename).Warn("media upload failed")
			result.Failed = append(result.Failed, header.Filename)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		result.Attachments = append(result.Attachments, *attachment)
	}

	if len(result.Attachments) == 0 {
		return api.respondToUploadError(firstErr, tc)
	}

	result.Success = true
	return &ServerResponse{
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       result,
	}
}

func (api *API) respondToUploadError(err error, tc *tracing.Context) *ServerResponse {
	var blocked *signalen.UploadBlockedError
	if errors.As(err, &blocked) {
		resp := api.respondWithError(err, values.MsgUploadBlocked, values.Error, tc)
		resp.StatusCode = blocked.StatusCode
		return resp
	}
	return api.respondWithUpstreamError(err, values.MsgUploadFailed, tc)
}
