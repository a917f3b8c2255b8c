package response

import (
	"time"

	"travel-reels/internal/data/entity"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationToResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
