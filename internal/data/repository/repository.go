package repository

import (
	"travel-reels/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Team         TeamRepository
	Reel         ReelRepository
	Like         LikeRepository
	Booking      BookingRepository
	Review       ReviewRepository
	Notification NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Team:         NewTeamRepository(db, log),
		Reel:         NewReelRepository(db, log),
		Like:         NewLikeRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Review:       NewReviewRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}
