package api

import (
	"net/http"
	"time"

	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/rs/zerolog/log"
)

type siteHandler struct {
	responder   Responder
	startupTime time.Time
}

func newSiteHandler(startupTime time.Time) siteHandler {
	return siteHandler{
		responder:   NewResponder(log.With().Str("handlerName", "siteHandler").Logger()),
		startupTime: startupTime,
	}
}

// @Router /highlights [get]
func (h siteHandler) getHighlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HighlightsResponse{Highlights: models.Highlights()})
	}
}

// @Router /health [get]
func (h siteHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status: "ok",
			Uptime: time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
