package wire

import (
	"net/http"

	"travel-reels/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func ReelRoutes(r chi.Router, h *adaptor.ReelHandler, reviews *adaptor.ReviewHandler, authn func(http.Handler) http.Handler) {
	r.Route("/reels", func(r chi.Router) {
		// Public: the feed, impressions, and reviews need no account.
		r.Get("/{id}", h.Get)
		r.Post("/{id}/view", h.View)
		r.Get("/{id}/reviews", reviews.ListByReel)

		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Post("/", h.Create)
			r.Patch("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
			r.Post("/{id}/like", h.Like)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Get("/host/reels", h.ListForHost)
		r.Get("/host/analytics", h.Analytics)
	})
}
