package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/perezful/hanabi-backend/internal/hub"
	"github.com/perezful/hanabi-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, wsOpts ws.Options) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, wsOpts))

	// Admin surface: read-only room listings plus a force-clear.
	r.Get("/rooms", ListRooms(h))
	r.Get("/rooms/waiting", ListWaitingRooms(h))
	r.Post("/rooms/clear", ClearRooms(h))
	return r
}
