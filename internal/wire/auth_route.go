package wire

import (
	"net/http"

	"travel-reels/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r chi.Router, h *adaptor.AuthHandler, authn func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Post("/logout", h.Logout)
			r.Post("/confirm-email", h.ConfirmEmail)
			r.Get("/me", h.Profile)
		})
	})
}
