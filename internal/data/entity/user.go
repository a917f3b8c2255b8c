package entity

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	RoleTraveler  UserRole = "traveler"
	RoleHost      UserRole = "host"
	RoleAdmin     UserRole = "admin"
	RoleSales     UserRole = "sales"
	RoleMarketing UserRole = "marketing"
)

type HostType string

const (
	HostTypeIndividual HostType = "individual"
	HostTypeBusiness   HostType = "business"
)

// VerificationStatus is the trust gate on a host account. Only a verified
// host may publish reels.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

type User struct {
	Base
	Username             string             `db:"username"`
	Email                string             `db:"email"`
	PasswordHash         string             `db:"password"`
	Phone                *string            `db:"phone"`
	Bio                  *string            `db:"bio"`
	Role                 UserRole           `db:"role"`
	HostType             *HostType          `db:"host_type"`
	VerificationStatus   VerificationStatus `db:"verification_status"`
	VerificationDocument *string            `db:"verification_document"`
	LegalName            *string            `db:"legal_name"`
	VerificationFeedback *string            `db:"verification_feedback"`
	EmailVerified        bool               `db:"email_verified"`
	IsActive             bool               `db:"is_active"`
}

// Principal is the authenticated actor on a request, supplied by the auth
// collaborator. It never changes mid-request; delegation is expressed as an
// explicit target host id alongside it.
type Principal struct {
	ID   uuid.UUID
	Role UserRole
}
