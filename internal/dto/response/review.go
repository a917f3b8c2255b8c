package response

import (
	"time"

	"travel-reels/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	TravelerID string    `json:"traveler_id"`
	ReelID     string    `json:"reel_id"`
	BookingID  string    `json:"booking_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	HostReply  *string   `json:"host_reply,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		TravelerID: review.TravelerID.String(),
		ReelID:     review.ReelID.String(),
		BookingID:  review.BookingID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		HostReply:  review.HostReply,
		CreatedAt:  review.CreatedAt,
	}
}
