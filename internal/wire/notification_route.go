package wire

import (
	"net/http"

	"travel-reels/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func NotificationRoutes(r chi.Router, h *adaptor.NotificationHandler, authn func(http.Handler) http.Handler) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(authn)
		r.Get("/", h.List)
		r.Patch("/{id}/read", h.MarkRead)
	})
}
