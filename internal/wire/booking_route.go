package wire

import (
	"net/http"

	"travel-reels/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func BookingRoutes(r chi.Router, h *adaptor.BookingHandler, authn func(http.Handler) http.Handler) {
	r.Route("/bookings", func(r chi.Router) {
		r.Use(authn)

		r.Post("/", h.Create)
		r.Get("/", h.ListMine)
		r.Patch("/{id}", h.Reschedule)
		r.Patch("/{id}/status", h.UpdateStatus)
		r.Post("/{id}/cancel", h.Cancel)
		r.Delete("/{id}", h.Delete)
	})

	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Get("/host/bookings", h.ListForHost)
	})
}
