package response

import (
	"time"

	"travel-reels/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	TravelerID      string               `json:"traveler_id"`
	HostID          string               `json:"host_id"`
	ReelID          string               `json:"reel_id"`
	ReelTitle       string               `json:"reel_title,omitempty"`
	BookingDate     string               `json:"booking_date"`
	TravelerName    string               `json:"traveler_name"`
	PhoneNumber     string               `json:"phone_number"`
	Guests          int                  `json:"guests"`
	TotalPrice      float64              `json:"total_price"`
	SpecialRequests *string              `json:"special_requests,omitempty"`
	Status          entity.BookingStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, reelTitle string) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		TravelerID:      booking.TravelerID.String(),
		HostID:          booking.HostID.String(),
		ReelID:          booking.ReelID.String(),
		ReelTitle:       reelTitle,
		BookingDate:     booking.BookingDate.Format("2006-01-02"),
		TravelerName:    booking.TravelerName,
		PhoneNumber:     booking.PhoneNumber,
		Guests:          booking.Guests,
		TotalPrice:      booking.TotalPrice,
		SpecialRequests: booking.SpecialRequests,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
	}
}
