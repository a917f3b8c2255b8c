package response

import (
	"time"

	"travel-reels/internal/data/entity"
)

type UserResponse struct {
	ID                 string  `json:"id"`
	Username           string  `json:"username"`
	Email              string  `json:"email"`
	Role               string  `json:"role"`
	HostType           *string `json:"host_type,omitempty"`
	VerificationStatus string  `json:"verification_status"`
	EmailVerified      bool    `json:"email_verified"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	var hostType *string
	if user.HostType != nil {
		ht := string(*user.HostType)
		hostType = &ht
	}

	return UserResponse{
		ID:                 user.ID.String(),
		Username:           user.Username,
		Email:              user.Email,
		Role:               string(user.Role),
		HostType:           hostType,
		VerificationStatus: string(user.VerificationStatus),
		EmailVerified:      user.EmailVerified,
	}
}
