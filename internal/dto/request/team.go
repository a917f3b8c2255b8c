package request

type AddTeamMemberRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Role        string   `json:"role" validate:"required,oneof=viewer editor admin"`
	Permissions []string `json:"permissions,omitempty"`
}
