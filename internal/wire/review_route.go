package wire

import (
	"net/http"

	"travel-reels/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func ReviewRoutes(r chi.Router, h *adaptor.ReviewHandler, authn func(http.Handler) http.Handler) {
	r.Route("/reviews", func(r chi.Router) {
		r.Use(authn)
		r.Post("/", h.Create)
		r.Post("/{id}/reply", h.Reply)
	})

	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Get("/host/reviews", h.ListForHost)
	})
}
