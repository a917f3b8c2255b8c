package entity

import (
	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeBooking NotificationType = "booking"
	NotificationTypeSystem  NotificationType = "system"
	NotificationTypeAccount NotificationType = "account"
)

// Notification is the persisted in-app record. It is always written for a
// state change; outbound email is a separate, best-effort step.
type Notification struct {
	BaseSimple
	UserID  uuid.UUID        `db:"user_id"`
	Title   string           `db:"title"`
	Message string           `db:"message"`
	Type    NotificationType `db:"type"`
	IsRead  bool             `db:"is_read"`
}
