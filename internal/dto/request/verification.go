package request

// SubmitVerificationRequest names an already-uploaded document; storing the
// file itself is the media collaborator's job.
type SubmitVerificationRequest struct {
	DocumentName string `json:"document_name" validate:"required,max=255"`
	LegalName    string `json:"legal_name" validate:"required,min=2,max=255"`
}

type SetHostStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}
