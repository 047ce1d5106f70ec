package rest

import (
	"context"
	"net/http"

	"github.com/delta10/signalen-console/internal/model"
	"golang.org/x/sync/errgroup"
)

// SignalDetail is everything the detail page needs in one response. The
// side collections are best effort: a failed fetch leaves its field at the
// empty default instead of failing the whole page.
type SignalDetail struct {
	Signal         *model.Signal            `json:"signal"`
	Attachments    []model.Attachment       `json:"attachments"`
	History        []model.HistoryEntry     `json:"history"`
	Context        *model.ContextData       `json:"context"`
	Reporters      []model.RelatedReporter  `json:"reporters"`
	StatusMessages []model.StatusMessage    `json:"status_messages"`
	Usernames      []model.AutocompleteUser `json:"usernames"`
}

func (api *API) listFilteredSignals(r *http.Request) ([]model.Signal, error) {
	signals, err := api.Deps.Signalen.ListSignals(r.Context())
	if err != nil {
		return nil, err
	}

	query := r.URL.Query()
	filtered := model.FilterSignals(signals, query.Get("status"), query.Get("q"))
	if filtered == nil {
		filtered = []model.Signal{}
	}
	return filtered, nil
}

// assembleSignalDetail fetches the signal itself first, then fans out over
// its side collections concurrently. Only the signal fetch can fail the
// call.
func (api *API) assembleSignalDetail(ctx context.Context, id string) (*SignalDetail, error) {
	signal, err := api.Deps.Signalen.GetSignal(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &SignalDetail{
		Signal:         signal,
		Attachments:    []model.Attachment{},
		History:        []model.HistoryEntry{},
		Reporters:      []model.RelatedReporter{},
		StatusMessages: model.DefaultStatusCatalog(),
		Usernames:      []model.AutocompleteUser{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		attachments, err := api.Deps.Signalen.ListAttachments(gctx, id)
		if err != nil {
			api.Logger.WithError(err).WithField("signal_id", id).Warn("attachments fetch failed")
			return nil
		}
		detail.Attachments = attachments
		return nil
	})
	g.Go(func() error {
		history, err := api.Deps.Signalen.GetHistory(gctx, id)
		if err != nil {
			api.Logger.WithError(err).WithField("signal_id", id).Warn("history fetch failed")
			return nil
		}
		detail.History = history
		return nil
	})
	g.Go(func() error {
		contextData, err := api.Deps.Signalen.GetContext(gctx, id)
		if err != nil {
			api.Logger.WithError(err).WithField("signal_id", id).Warn("context fetch failed")
			return nil
		}
		detail.Context = contextData
		return nil
	})
	g.Go(func() error {
		reporters, err := api.Deps.Signalen.ListReporters(gctx, id)
		if err != nil {
			api.Logger.WithError(err).WithField("signal_id", id).Warn("reporters fetch failed")
			return nil
		}
		detail.Reporters = reporters
		return nil
	})
	g.Go(func() error {
		detail.StatusMessages = api.statusCatalogFor(gctx, signal)
		return nil
	})
	g.Go(func() error {
		usernames, err := api.Deps.Signalen.ListUsernames(gctx, api.Config.DepartmentCode)
		if err != nil {
			api.Logger.WithError(err).WithField("signal_id", id).Warn("usernames fetch failed")
			return nil
		}
		detail.Usernames = usernames
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// statusCatalogFor returns the category's status message catalog, or the
// built-in defaults when the category cannot be resolved or the upstream
// has nothing for it.
func (api *API) statusCatalogFor(ctx context.Context, signal *model.Signal) []model.StatusMessage {
	categoryID, ok := signal.Category.ResolveID()
	if !ok {
		return model.DefaultStatusCatalog()
	}

	catalog, err := api.Deps.Signalen.ListStatusMessages(ctx, categoryID)
	if err != nil {
		api.Logger.WithError(err).WithField("category_id", categoryID).Warn("status messages fetch failed")
		return model.DefaultStatusCatalog()
	}
	if len(catalog) == 0 {
		return model.DefaultStatusCatalog()
	}
	return catalog
}

type GeoJSONFeature struct {
	Type       string                 `json:"type"`
	Geometry   model.Point            `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

func signalsToGeoJSON(signals []model.Signal) GeoJSONFeatureCollection {
	collection := GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: []GeoJSONFeature{},
	}
	for _, signal := range signals {
		point := signal.Location.Geometrie
		if len(point.Coordinates) < 2 {
			continue
		}
		if point.Type == "" {
			point.Type = "Point"
		}
		collection.Features = append(collection.Features, GeoJSONFeature{
			Type:     "Feature",
			Geometry: point,
			Properties: map[string]interface{}{
				"id":            signal.ID,
				"id_display":    signal.IDDisplay,
				"text":          signal.Text,
				"state":         signal.Status.State,
				"state_display": signal.Status.StateDisplay,
				"priority":      signal.Priority.Priority,
				"address":       signal.Location.AddressText,
				"created_at":    signal.CreatedAt,
			},
		})
	}
	return collection
}
