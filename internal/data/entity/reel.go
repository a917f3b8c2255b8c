package entity

import (
	"time"

	"github.com/google/uuid"
)

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// Reel is a bookable listing published by a host.
type Reel struct {
	Base
	HostID             uuid.UUID        `db:"host_id"`
	VideoURL           string           `db:"video_url"`
	Title              string           `db:"title"`
	Description        *string          `db:"description"`
	Location           *string          `db:"location"`
	Price              *float64         `db:"price"`
	Category           *string          `db:"category"`
	IsActive           bool             `db:"is_active"`
	ExpiresAt          *time.Time       `db:"expires_at"`
	ModerationStatus   ModerationStatus `db:"moderation_status"`
	ModerationFeedback *string          `db:"moderation_feedback"`
	Views              int64            `db:"views"`
	LikesCount         int64            `db:"likes_count"`
}

// UnitPrice is the per-guest price; a reel without a price books at 0.
func (r *Reel) UnitPrice() float64 {
	if r.Price == nil {
		return 0
	}
	return *r.Price
}

// Bookable reports whether a reservation may be created or rescheduled
// against this reel at the given time.
func (r *Reel) Bookable(now time.Time) bool {
	if !r.IsActive || r.ModerationStatus != ModerationApproved {
		return false
	}
	if r.ExpiresAt != nil && !r.ExpiresAt.After(now) {
		return false
	}
	return true
}

// Like marks that a user liked a reel; one row per (reel, user).
type Like struct {
	BaseSimple
	ReelID uuid.UUID `db:"reel_id"`
	UserID uuid.UUID `db:"user_id"`
}
