package response

import (
	"time"

	"travel-reels/internal/data/entity"
)

type TeamMemberResponse struct {
	ID          string       `json:"id"`
	HostID      string       `json:"host_id"`
	Role        string       `json:"role"`
	Permissions []string     `json:"permissions"`
	Member      UserResponse `json:"member"`
	CreatedAt   time.Time    `json:"created_at"`
}

func TeamMemberToResponse(member *entity.TeamMember, memberUser *entity.User) TeamMemberResponse {
	resp := TeamMemberResponse{
		ID:          member.ID.String(),
		HostID:      member.HostID.String(),
		Role:        string(member.Role),
		Permissions: member.Permissions,
		CreatedAt:   member.CreatedAt,
	}
	if memberUser != nil {
		resp.Member = UserToResponse(memberUser)
	}
	return resp
}

// ManagedHostResponse is one host account the caller can act for.
type ManagedHostResponse struct {
	DelegationID string       `json:"delegation_id"`
	Role         string       `json:"role"`
	Host         UserResponse `json:"host"`
}
