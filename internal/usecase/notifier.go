package usecase

import (
	"context"
	"time"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier delivers outbound email for committed state changes. Delivery
// failures are the relay's problem, not the caller's: services log and move
// on, the in-app notification row is already persisted.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// dispatch records an in-app notification for the recipient and, when the
// recipient's email address is confirmed, hands the message to the notifier.
// The row is written unconditionally so the event survives even when the
// recipient is not contactable.
func dispatch(ctx context.Context, repo *repository.Repository, notifier Notifier, log *zap.Logger, recipient *entity.User, notifType entity.NotificationType, title, message string) {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  recipient.ID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}

	if err := repo.Notification.Create(ctx, notification); err != nil {
		log.Error("Failed to record notification",
			zap.String("user_id", recipient.ID.String()),
			zap.Error(err),
		)
	}

	if !recipient.EmailVerified {
		return
	}

	if err := notifier.Send(ctx, recipient.Email, title, message); err != nil {
		log.Warn("Outbound notification failed",
			zap.String("user_id", recipient.ID.String()),
			zap.Error(err),
		)
	}
}
