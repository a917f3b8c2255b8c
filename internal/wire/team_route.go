package wire

import (
	"net/http"

	"travel-reels/internal/adaptor"
	"travel-reels/internal/data/entity"
	"travel-reels/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func TeamRoutes(r chi.Router, h *adaptor.TeamHandler, authn func(http.Handler) http.Handler, log *zap.Logger) {
	r.Route("/team", func(r chi.Router) {
		r.Use(authn)

		// Grant management is host-only; acting on a grant is open to any
		// authenticated member.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, entity.RoleHost, entity.RoleAdmin))
			r.Post("/", h.Add)
			r.Get("/", h.List)
			r.Delete("/{id}", h.Remove)
		})

		r.Get("/managing", h.Managing)
	})
}
