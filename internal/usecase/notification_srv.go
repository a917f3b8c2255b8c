package usecase

import (
	"context"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/data/repository"
	"travel-reels/internal/dto/response"
	"travel-reels/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notificationPageSize caps how many recent notifications a listing returns.
const notificationPageSize = 20

type NotificationService interface {
	ListNotifications(ctx context.Context, principal entity.Principal) ([]response.NotificationResponse, error)

	// MarkRead flags one of the caller's notifications as read. Another
	// user's notification reads as not found. Idempotent.
	MarkRead(ctx context.Context, principal entity.Principal, notificationID string) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, principal entity.Principal) ([]response.NotificationResponse, error) {
	notifications, err := s.repo.Notification.FindByUser(ctx, principal.ID, notificationPageSize)
	if err != nil {
		return nil, storageErr("could not load notifications", err)
	}

	responses := make([]response.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, response.NotificationToResponse(notification))
	}
	return responses, nil
}

func (s *notificationService) MarkRead(ctx context.Context, principal entity.Principal, notificationID string) error {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return apperr.Invalid("invalid notification id")
	}

	if err := s.repo.Notification.MarkRead(ctx, id, principal.ID); err != nil {
		return storageErr("could not mark notification read", err)
	}

	return nil
}
