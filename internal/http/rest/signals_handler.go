package rest

import (
	"net/http"
	"strings"

	"github.com/delta10/signalen-console/internal/editor"
	"github.com/delta10/signalen-console/internal/http/signalen"
	"github.com/delta10/signalen-console/util"
	"github.com/delta10/signalen-console/util/tracing"
	"github.com/delta10/signalen-console/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func (api *API) SignalRoutes() chi.Router {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/", Handler(api.ListSignals))
	router.Method(http.MethodGet, "/geojson", Handler(api.ListSignalsGeoJSON))
	router.Method(http.MethodGet, "/{id}", Handler(api.GetSignalDetail))
	router.Method(http.MethodPatch, "/{id}", Handler(api.UpdateSignal))
	router.Method(http.MethodGet, "/{id}/attachments", Handler(api.ListAttachments))
	router.Method(http.MethodPost, "/{id}/attachments", Handler(api.UploadAttachment))
	router.Method(http.MethodDelete, "/{id}/attachments", Handler(api.DeleteAttachment))
	return router
}

// ListSignals proxies the upstream signal list and applies the console's
// status bucket and free-text filters server side.
func (api *API) ListSignals(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())
	if resp := api.requireToken(tc); resp != nil {
		return resp
	}

	signals, err := api.listFilteredSignals(r)
	if err != nil {
		return api.respondWithUpstreamError(err, values.MsgFetchFailed, tc)
	}

	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       signals,
	}
}

// ListSignalsGeoJSON serves the same filtered list as a GeoJSON
// FeatureCollection for the map view. Signals without coordinates are left
// out.
func (api *API) ListSignalsGeoJSON(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())
	if resp := api.requireToken(tc); resp != nil {
		return resp
	}

	signals, err := api.listFilteredSignals(r)
	if err != nil {
		return api.respondWithUpstreamError(err, values.MsgFetchFailed, tc)
	}

	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       signalsToGeoJSON(signals),
	}
}

func (api *API) GetSignalDetail(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())
	if resp := api.requireToken(tc); resp != nil {
		return resp
	}

	id := chi.URLParam(r, "id")
	if !util.NotBlank(id) {
		return api.respondWithError(errors.New("empty signal id"), values.MsgInvalidSignalID, values.BadRequestBody, tc)
	}

	detail, err := api.assembleSignalDetail(r.Context(), id)
	if err != nil {
		return api.respondWithUpstreamError(err, values.MsgFetchFailed, tc)
	}

	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       detail,
	}
}

type updateSignalRequest struct {
	Status      string `json:"status"`
	Priority    string `json:"priority" validate:"omitempty,priority"`
	Explanation string `json:"explanation"`
}

// UpdateSignal applies a status and/or priority change. The request names
// the desired end state; only the fields that differ from the current
// signal are sent upstream, and a request that changes nothing succeeds
// without touching the upstream at all.
func (api *API) UpdateSignal(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())
	if resp := api.requireToken(tc); resp != nil {
		return resp
	}

	id := chi.URLParam(r, "id")
	if !util.NotBlank(id) {
		return api.respondWithError(errors.New("empty signal id"), values.MsgInvalidSignalID, values.BadRequestBody, tc)
	}

	req := updateSignalRequest{}
	if err := util.DecodeJSONBody(tc, r.Body, &req); err != nil {
		return api.respondWithError(err, values.MsgInvalidRequestBody, values.BadRequestBody, tc)
	}
	req.Priority = strings.ToLower(strings.TrimSpace(req.Priority))
	if err := util.ValidateStruct(req); err != nil {
		return api.respondWithError(err, values.MsgInvalidRequestBody, values.BadRequestBody, tc)
	}

	signal, err := api.Deps.Signalen.GetSignal(r.Context(), id)
	if err != nil {
		return api.respondWithUpstreamError(err, values.MsgFetchFailed, tc)
	}

	catalog := api.statusCatalogFor(r.Context(), signal)

	ed := editor.New(id, signal, catalog)
	ed.BeginEdit()
	if util.NotBlank(req.Status) {
		ed.SetStatus(req.Status)
	}
	if util.NotBlank(req.Priority) {
		ed.SetPriority(req.Priority)
	}
	if err := ed.SetExplanation(req.Explanation); err != nil {
		return api.respondWithError(err, values.MsgExplanationTooLong, values.Unprocessable, tc)
	}

	saved, err := ed.Save(r.Context(), api.Deps.Signalen)
	if err != nil {
		return api.respondToSaveError(err, tc)
	}

	if saved {
		api.Deps.WebSocket.BroadcastSignalUpdate(id)
	}

	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       ed.Signal(),
	}
}

func (api *API) respondToSaveError(err error, tc *tracing.Context) *ServerResponse {
	switch {
	case errors.Is(err, editor.ErrUnknownStatus):
		return api.respondWithError(err, values.MsgUnknownStatus, values.BadRequestBody, tc)
	case errors.Is(err, editor.ErrExplanationRequired):
		return api.respondWithError(err, values.MsgExplanationRequired, values.Unprocessable, tc)
	case errors.Is(err, editor.ErrExplanationTooLong):
		return api.respondWithError(err, values.MsgExplanationTooLong, values.Unprocessable, tc)
	case errors.Is(err, editor.ErrChangeNotPermitted):
		resp := api.respondWithError(err, values.MsgSaveNotPermitted, values.NotAllowed, tc)
		var apiErr *signalen.APIError
		if errors.As(err, &apiErr) {
			resp.StatusCode = apiErr.StatusCode
		}
		return resp
	}
	return api.respondWithUpstreamError(err, values.MsgSaveNotPermitted, tc)
}
