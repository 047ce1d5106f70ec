package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/delta10/signalen-console/config"
	deps "github.com/delta10/signalen-console/internal/debs"
	"github.com/delta10/signalen-console/internal/http/signalen"
	"github.com/delta10/signalen-console/util"
	"github.com/delta10/signalen-console/util/tracing"
	"github.com/delta10/signalen-console/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

// Handler is an http.Handler whose return value is shaped onto the wire:
// errors as {error: message}, success data as-is.
type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	if resp == nil {
		// handler took over the connection
		return
	}
	if resp.ErrorMessage != "" {
		writeErrorBody(w, resp.ErrorMessage, resp.StatusCode)
		return
	}
	if resp.Data == nil {
		w.WriteHeader(resp.StatusCode)
		return
	}
	respByte, err := json.Marshal(resp.Data)
	if err != nil {
		writeErrorBody(w, "unable to marshal server response", http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

// ServerResponse carries one handler outcome. Exactly one of ErrorMessage
// and Data is set; Status is the symbolic status the code was derived from.
type ServerResponse struct {
	Status       string
	StatusCode   int
	ErrorMessage string
	Data         interface{}
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
	Logger *logrus.Logger
}

func (api *API) Init() {
	if api.Logger == nil {
		api.Logger = logrus.New()
	}
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   api.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", values.HeaderRequestID, values.HeaderRequestSource},
		AllowCredentials: true,
	}))
	mux.Use(RequestTracing)

	mux.Get("/",
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("signalen console"))
		},
	)

	mux.Route("/api", func(r chi.Router) {
		r.Mount("/signals", api.SignalRoutes())
		r.Mount("/duplicates", api.DuplicateRoutes())
		r.Method(http.MethodPost, "/upload", Handler(api.UploadMedia))
	})

	mux.Get("/ws", api.Deps.WebSocket.HandleConnections)

	return mux
}

func (a *API) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
	defer cancel()

	return a.Server.Shutdown(ctx)
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func writeErrorBody(w http.ResponseWriter, message string, statusCode int) {
	body, err := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: message})
	if err != nil {
		http.Error(w, message, statusCode)
		return
	}
	writeJSONResponse(w, body, statusCode)
}

// respondWithError logs the cause with its tracing fields and shapes the
// user-facing response. The cause itself never crosses the wire.
func (api *API) respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	entry := api.Logger.WithField("status", status)
	if tc != nil {
		entry = entry.WithFields(logrus.Fields{
			"request_id":     tc.RequestID,
			"request_source": tc.RequestSource,
		})
	}
	entry.WithError(err).Error(message)

	return &ServerResponse{
		Status:       status,
		StatusCode:   util.StatusCode(status),
		ErrorMessage: message,
	}
}

// respondWithUpstreamError translates an upstream client failure: the
// upstream's status code is forwarded where known, transport and decode
// failures collapse to a generic 500, and a missing credential is a
// configuration error.
func (api *API) respondWithUpstreamError(err error, fallback string, tc *tracing.Context) *ServerResponse {
	switch {
	case errors.Is(err, signalen.ErrNoToken):
		return api.respondWithError(err, values.MsgTokenMissing, values.Error, tc)
	case errors.Is(err, signalen.ErrNotFound):
		return api.respondWithError(err, values.MsgSignalNotFound, values.NotFound, tc)
	}

	var apiErr *signalen.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		resp := api.respondWithError(err, message, values.Error, tc)
		resp.StatusCode = apiErr.StatusCode
		return resp
	}

	return api.respondWithError(err, fallback, values.Error, tc)
}

// requireToken fails closed before any upstream call when the server-held
// credential is missing.
func (api *API) requireToken(tc *tracing.Context) *ServerResponse {
	if api.Config.HasToken() {
		return nil
	}
	return api.respondWithError(errors.New("API token is not configured"), values.MsgTokenMissing, values.Error, tc)
}
