package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// bookingTransitions is the host-side transition table. Cancellation by the
// traveler goes through its own path, not this table.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted},
}

// CanTransitionTo reports whether the host-side table allows s -> target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Booking is a traveler's reservation against a reel. The traveler and the
// reel's host are both stakeholders; host_id is denormalized onto the row so
// authorization never needs the reel.
type Booking struct {
	Base
	TravelerID        uuid.UUID     `db:"traveler_id"`
	HostID            uuid.UUID     `db:"host_id"`
	ReelID            uuid.UUID     `db:"reel_id"`
	BookingDate       time.Time     `db:"booking_date"`
	PhoneNumber       string        `db:"phone_number"`
	TravelerName      string        `db:"traveler_name"`
	Guests            int           `db:"guests"`
	TotalPrice        float64       `db:"total_price"`
	SpecialRequests   *string       `db:"special_requests"`
	Status            BookingStatus `db:"status"`
	DeletedByTraveler bool          `db:"deleted_by_traveler"`
}

// Active means the booking still occupies the (traveler, reel) slot for the
// duplicate-booking rule: non-terminal and not soft-deleted.
func (b *Booking) Active() bool {
	return !b.Status.Terminal() && !b.DeletedByTraveler
}
