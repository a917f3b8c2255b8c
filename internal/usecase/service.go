package usecase

import (
	"travel-reels/internal/data/repository"
	"travel-reels/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Access       AccessService
	Booking      BookingService
	Reel         ReelService
	Team         TeamService
	Verification VerificationService
	Review       ReviewService
	Notification NotificationService
}

func NewService(repo *repository.Repository, config *utils.Config, notifier Notifier, log *zap.Logger) *Service {
	access := NewAccessService(repo, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Access:       access,
		Booking:      NewBookingService(repo, access, notifier, log),
		Reel:         NewReelService(repo, access, log),
		Team:         NewTeamService(repo, log),
		Verification: NewVerificationService(repo, notifier, log),
		Review:       NewReviewService(repo, access, log),
		Notification: NewNotificationService(repo, log),
	}
}
