package request

type CreateBookingRequest struct {
	ReelID          string  `json:"reel_id" validate:"required,uuid4"`
	BookingDate     string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	PhoneNumber     string  `json:"phone_number" validate:"required,min=6,max=32"`
	TravelerName    string  `json:"traveler_name" validate:"required,min=2,max=255"`
	Guests          int     `json:"guests" validate:"required,min=1"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

// RescheduleBookingRequest carries optional fields: omitted values keep the
// current date or guest count.
type RescheduleBookingRequest struct {
	BookingDate *string `json:"booking_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Guests      *int    `json:"guests,omitempty" validate:"omitempty,min=1"`
}
