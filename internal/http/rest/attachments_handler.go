package rest

import (
	"net/http"
	"strings"

	"github.com/delta10/signalen-console/internal/http/signalen"
	"github.com/delta10/signalen-console/internal/model"
	"github.com/delta10/signalen-console/util"
	"github.com/delta10/signalen-console/util/tracing"
	"github.com/delta10/signalen-console/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// signalUUIDParam validates the signal identifier on the attachment
// routes, which address signals by UUID rather than numeric id.
func (api *API) signalUUIDParam(r *http.Request, tc *tracing.Context) (string, *ServerResponse) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", api.respondWithError(err, values.MsgInvalidSignalID, values.BadRequestBody, tc)
	}
	return id, nil
}

func (api *API) ListAttachments(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())
	if resp := api.requireToken(tc); resp != nil {
		return resp
	}
	id, errResp := api.signalUUIDParam(r, tc)
	if errResp != nil {
		return errResp
	}

	attachments, err := api.Deps.Signalen.ListAttachments(r.Context(), id)
	if err != nil {
		return api.respondWithUpstreamError(err, values.MsgFetchFailed, tc)
	}
	if attachments == nil {
		attachments = []model.Attachment{}
	}

	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       attachments,
	}
}

// UploadAttachment relays the browser's multipart body upstream without
// buffering or re-encoding it.
func (api *API) UploadAttachment(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())
	if resp := api.requireToken(tc); resp != nil {
		return resp
	}
	id, errResp := api.signalUUIDParam(r, tc)
	if errResp != nil {
		return errResp
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return api.respondWithError(errors.New("attachment upload requires a multipart body"), values.MsgNoFileProvided, values.BadRequestBody, tc)
	}

	attachment, err := api.Deps.Signalen.UploadAttachment(r.Context(), id, contentType, r.Body)
	if err != nil {
		var apiErr *signalen.APIError
		if errors.As(err, &apiErr) && apiErr.Message == "" {
			// upstream answered with an HTML error page, typically a
			// proxy-level size or policy rejection
			resp := api.respondWithError(err, values.MsgUploadBlocked, values.Error, tc)
			resp.StatusCode = apiErr.StatusCode
			return resp
		}
		return api.respondWithUpstreamError(err, values.MsgUploadFailed, tc)
	}

	api.Deps.WebSocket.BroadcastSignalUpdate(id)
	return &ServerResponse{
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       attachment,
	}
}

func (api *API) DeleteAttachment(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())
	if resp := api.requireToken(tc); resp != nil {
		return resp
	}
	id, errResp := api.signalUUIDParam(r, tc)
	if errResp != nil {
		return errResp
	}

	attachmentID := r.URL.Query().Get("attachmentId")
	if !util.NotBlank(attachmentID) {
		return api.respondWithError(errors.New("attachmentId query parameter is required"), values.MsgAttachmentIDNeeded, values.BadRequestBody, tc)
	}

	if err := api.Deps.Signalen.DeleteAttachment(r.Context(), id, attachmentID); err != nil {
		return api.respondWithUpstreamError(err, values.MsgDeleteFailed, tc)
	}

	api.Deps.WebSocket.BroadcastSignalUpdate(id)
	return &ServerResponse{
		Status:     values.NoContent,
		StatusCode: util.StatusCode(values.NoContent),
	}
}
