package response

import (
	"travel-reels/internal/data/entity"
)

type VerificationStatusResponse struct {
	Status    string  `json:"status"`
	Feedback  *string `json:"feedback,omitempty"`
	LegalName *string `json:"legal_name,omitempty"`
	HostType  *string `json:"host_type,omitempty"`
}

func VerificationToResponse(user *entity.User) VerificationStatusResponse {
	var hostType *string
	if user.HostType != nil {
		ht := string(*user.HostType)
		hostType = &ht
	}

	return VerificationStatusResponse{
		Status:    string(user.VerificationStatus),
		Feedback:  user.VerificationFeedback,
		LegalName: user.LegalName,
		HostType:  hostType,
	}
}
