package wire

import (
	"net/http"

	"travel-reels/internal/adaptor"
	"travel-reels/internal/data/entity"
	"travel-reels/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func VerificationRoutes(r chi.Router, h *adaptor.VerificationHandler, authn func(http.Handler) http.Handler, log *zap.Logger) {
	r.Route("/verification", func(r chi.Router) {
		r.Use(authn)
		r.Post("/", h.Submit)
		r.Get("/", h.Status)
	})

	r.Route("/admin/hosts", func(r chi.Router) {
		r.Use(authn)
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))
		r.Patch("/{id}/verification", h.SetHostStatus)
	})
}
