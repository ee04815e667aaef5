package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/DoyleJ11/galaxy-draft-backend/internal/hub"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/systems"
	"github.com/DoyleJ11/galaxy-draft-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, reg *systems.Registry, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/drafts", CreateDraft(h, reg, log))
	r.Get("/drafts/{id}", GetDraft(h))
	r.Get("/drafts/{id}/map", FinalMap(h, reg))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, log))
	return r
}
