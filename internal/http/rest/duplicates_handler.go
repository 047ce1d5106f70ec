package rest

import (
	"net/http"

	"github.com/delta10/signalen-console/internal/model"
	"github.com/delta10/signalen-console/util"
	"github.com/delta10/signalen-console/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) DuplicateRoutes() chi.Router {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/", Handler(api.ListDuplicates))
	return router
}

// ListDuplicates proxies the duplicate detection companion service. It
// holds no upstream credential, so no token check applies here.
func (api *API) ListDuplicates(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromContext(r.Context())

	duplicates, err := api.Deps.Duplicates.ListDuplicates(r.Context())
	if err != nil {
		return api.respondWithError(err, values.MsgDuplicatesFailed, values.Error, tc)
	}
	if duplicates == nil {
		duplicates = []model.Duplicate{}
	}

	return &ServerResponse{
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       duplicates,
	}
}
