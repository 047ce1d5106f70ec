package deps

import (
	"github.com/delta10/signalen-console/config"
	"github.com/delta10/signalen-console/internal/http/duplicates"
	"github.com/delta10/signalen-console/internal/http/signalen"
	"github.com/delta10/signalen-console/util/websockets"
)

type Dependencies struct {
	Signalen   *signalen.Client
	Media      *signalen.MediaUploader
	Duplicates *duplicates.Client
	WebSocket  *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	tokenProvider := signalen.TokenProvider(func() string { return cfg.APIToken })

	deps := Dependencies{
		Signalen:   signalen.New(cfg.APIBaseURL, tokenProvider),
		Media:      signalen.NewMediaUploader(cfg.MediaUploadURL, tokenProvider),
		Duplicates: duplicates.New(cfg.DuplicatesURL),
		WebSocket:  websockets.NewWebSocketManager(),
	}
	return &deps
}
