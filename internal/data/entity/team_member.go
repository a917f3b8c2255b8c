package entity

import (
	"github.com/google/uuid"
)

// TeamRole bounds what a delegate may do with the host's resources.
type TeamRole string

const (
	TeamRoleViewer TeamRole = "viewer"
	TeamRoleEditor TeamRole = "editor"
	TeamRoleAdmin  TeamRole = "admin"
)

// Capability is a named permission checked by the access decision point.
type Capability string

const (
	CapabilityRead           Capability = "read"
	CapabilityManageBookings Capability = "manage_bookings"
	CapabilityManageReels    Capability = "manage_reels"
	CapabilityReplyReviews   Capability = "reply_reviews"
	CapabilityDelete         Capability = "delete"
)

var teamRoleCapabilities = map[TeamRole][]Capability{
	TeamRoleViewer: {CapabilityRead},
	TeamRoleEditor: {CapabilityRead, CapabilityManageBookings, CapabilityManageReels, CapabilityReplyReviews},
	TeamRoleAdmin:  {CapabilityRead, CapabilityManageBookings, CapabilityManageReels, CapabilityReplyReviews, CapabilityDelete},
}

// Grants reports whether the role's capability set includes c.
func (r TeamRole) Grants(c Capability) bool {
	for _, granted := range teamRoleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

func (r TeamRole) Valid() bool {
	_, ok := teamRoleCapabilities[r]
	return ok
}

// TeamMember is a delegation: member_id acts on host_id's resources with the
// role's capability set. member_id != host_id; one row per (host, member).
type TeamMember struct {
	BaseSimple
	HostID      uuid.UUID `db:"host_id"`
	MemberID    uuid.UUID `db:"member_id"`
	Role        TeamRole  `db:"role"`
	Permissions []string  `db:"permissions"`
}
