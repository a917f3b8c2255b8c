package response

import (
	"time"

	"travel-reels/internal/data/entity"
)

type ReelResponse struct {
	ID                 string     `json:"id"`
	HostID             string     `json:"host_id"`
	VideoURL           string     `json:"video_url"`
	Title              string     `json:"title"`
	Description        *string    `json:"description,omitempty"`
	Location           *string    `json:"location,omitempty"`
	Price              *float64   `json:"price,omitempty"`
	Category           *string    `json:"category,omitempty"`
	IsActive           bool       `json:"is_active"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	ModerationStatus   string     `json:"moderation_status"`
	ModerationFeedback *string    `json:"moderation_feedback,omitempty"`
	Views              int64      `json:"views"`
	LikesCount         int64      `json:"likes_count"`
	CreatedAt          time.Time  `json:"created_at"`
}

func ReelToResponse(reel *entity.Reel) ReelResponse {
	return ReelResponse{
		ID:                 reel.ID.String(),
		HostID:             reel.HostID.String(),
		VideoURL:           reel.VideoURL,
		Title:              reel.Title,
		Description:        reel.Description,
		Location:           reel.Location,
		Price:              reel.Price,
		Category:           reel.Category,
		IsActive:           reel.IsActive,
		ExpiresAt:          reel.ExpiresAt,
		ModerationStatus:   string(reel.ModerationStatus),
		ModerationFeedback: reel.ModerationFeedback,
		Views:              reel.Views,
		LikesCount:         reel.LikesCount,
		CreatedAt:          reel.CreatedAt,
	}
}

type ReelAnalyticsResponse struct {
	TotalViews int64          `json:"total_views"`
	TotalLikes int64          `json:"total_likes"`
	TotalReels int            `json:"total_reels"`
	TopReels   []ReelResponse `json:"top_reels"`
}

type LikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

type ViewsResponse struct {
	Views int64 `json:"views"`
}
