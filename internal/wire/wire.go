// Package wire assembles the HTTP surface: repositories into services,
// services into handlers, handlers onto routes.
package wire

import (
	"travel-reels/internal/adaptor"
	"travel-reels/internal/data/repository"
	"travel-reels/internal/notify"
	"travel-reels/internal/usecase"
	"travel-reels/pkg/middleware"
	"travel-reels/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

func Wiring(repo *repository.Repository, config *utils.Config, log *zap.Logger) *App {
	notifier := notify.NewEmailNotifier(config.Email, log)
	service := usecase.NewService(repo, config, notifier, log)

	handler := &adaptor.Handler{
		Auth:         adaptor.NewAuthHandler(service.Auth, log),
		Booking:      adaptor.NewBookingHandler(service.Booking, log),
		Reel:         adaptor.NewReelHandler(service.Reel, log),
		Team:         adaptor.NewTeamHandler(service.Team, log),
		Verification: adaptor.NewVerificationHandler(service.Verification, log),
		Review:       adaptor.NewReviewHandler(service.Review, log),
		Notification: adaptor.NewNotificationHandler(service.Notification, log),
	}

	authn := middleware.AuthSession(repo.Session, repo.User, log)

	router := chi.NewRouter()
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recover(log))
	router.Use(middleware.CORS())

	router.Route("/api/v1", func(r chi.Router) {
		AuthRoutes(r, handler.Auth, authn)
		ReelRoutes(r, handler.Reel, handler.Review, authn)
		BookingRoutes(r, handler.Booking, authn)
		TeamRoutes(r, handler.Team, authn, log)
		VerificationRoutes(r, handler.Verification, authn, log)
		ReviewRoutes(r, handler.Review, authn)
		NotificationRoutes(r, handler.Notification, authn)
	})

	return &App{
		Router:  router,
		Service: service,
	}
}
