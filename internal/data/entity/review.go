package entity

import (
	"github.com/google/uuid"
)

// Review is attached to exactly one completed booking.
type Review struct {
	Base
	TravelerID uuid.UUID `db:"traveler_id"`
	ReelID     uuid.UUID `db:"reel_id"`
	BookingID  uuid.UUID `db:"booking_id"`
	Rating     int       `db:"rating"`
	Comment    *string   `db:"comment"`
	HostReply  *string   `db:"host_reply"`
}
