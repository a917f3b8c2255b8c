package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/data/repository"
	"travel-reels/internal/dto/request"
	"travel-reels/internal/dto/response"
	"travel-reels/pkg/apperr"
	"travel-reels/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VerificationService interface {
	// SubmitDocument runs the trust-gate evaluation on a host's identity
	// document. A rejected host may resubmit; a verified host may not.
	SubmitDocument(ctx context.Context, principal entity.Principal, req *request.SubmitVerificationRequest) (*response.VerificationStatusResponse, error)

	GetStatus(ctx context.Context, principal entity.Principal) (*response.VerificationStatusResponse, error)

	// SetHostStatus is the administrator override: it forces a host's
	// verification state without running the evaluator.
	SetHostStatus(ctx context.Context, principal entity.Principal, hostID string, req *request.SetHostStatusRequest) (*response.VerificationStatusResponse, error)
}

type verificationService struct {
	repo     *repository.Repository
	notifier Notifier
	log      *zap.Logger
}

func NewVerificationService(repo *repository.Repository, notifier Notifier, log *zap.Logger) VerificationService {
	return &verificationService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "verification")),
	}
}

func (s *verificationService) SubmitDocument(ctx context.Context, principal entity.Principal, req *request.SubmitVerificationRequest) (*response.VerificationStatusResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, storageErr("could not load account", err)
	}
	if user == nil {
		return nil, apperr.NotFound("account not found")
	}

	if user.Role != entity.RoleHost {
		return nil, apperr.Forbidden("only host accounts are verified")
	}

	if user.VerificationStatus == entity.VerificationVerified {
		return nil, apperr.Conflict("your account is already verified")
	}

	hostType := entity.HostTypeIndividual
	if user.HostType != nil {
		hostType = *user.HostType
	}

	user.VerificationDocument = &req.DocumentName
	user.LegalName = &req.LegalName

	ok, feedback := evaluateDocument(hostType, req.DocumentName, req.LegalName)
	if ok {
		user.VerificationStatus = entity.VerificationVerified
		user.VerificationFeedback = nil
	} else {
		user.VerificationStatus = entity.VerificationRejected
		user.VerificationFeedback = &feedback
	}

	if err := s.repo.User.UpdateVerification(ctx, user); err != nil {
		return nil, storageErr("could not update verification", err)
	}

	s.log.Info("Verification evaluated",
		zap.String("user_id", user.ID.String()),
		zap.String("status", string(user.VerificationStatus)),
	)

	if ok {
		dispatch(ctx, s.repo, s.notifier, s.log, user, entity.NotificationTypeAccount,
			"Account verified",
			"Your host account has been verified. You can now publish reels.",
		)
	} else {
		dispatch(ctx, s.repo, s.notifier, s.log, user, entity.NotificationTypeAccount,
			"Verification rejected",
			feedback+" You may submit a new document.",
		)
	}

	resp := response.VerificationToResponse(user)
	return &resp, nil
}

func (s *verificationService) GetStatus(ctx context.Context, principal entity.Principal) (*response.VerificationStatusResponse, error) {
	user, err := s.repo.User.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, storageErr("could not load account", err)
	}
	if user == nil {
		return nil, apperr.NotFound("account not found")
	}

	resp := response.VerificationToResponse(user)
	return &resp, nil
}

func (s *verificationService) SetHostStatus(ctx context.Context, principal entity.Principal, hostID string, req *request.SetHostStatusRequest) (*response.VerificationStatusResponse, error) {
	if principal.Role != entity.RoleAdmin {
		return nil, apperr.Forbidden("access denied")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(hostID)
	if err != nil {
		return nil, apperr.Invalid("invalid host id")
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("could not load account", err)
	}
	if user == nil {
		return nil, apperr.NotFound("host not found")
	}

	if user.Role != entity.RoleHost {
		return nil, apperr.Conflict("only host accounts are verified")
	}

	feedback := "Status set by an administrator."
	user.VerificationStatus = entity.VerificationStatus(req.Status)
	user.VerificationFeedback = &feedback

	if err := s.repo.User.UpdateVerification(ctx, user); err != nil {
		return nil, storageErr("could not update verification", err)
	}

	s.log.Info("Verification status overridden",
		zap.String("host_id", user.ID.String()),
		zap.String("status", req.Status),
		zap.String("admin_id", principal.ID.String()),
	)

	dispatch(ctx, s.repo, s.notifier, s.log, user, entity.NotificationTypeAccount,
		"Verification status updated",
		"An administrator set your verification status to "+req.Status+".",
	)

	resp := response.VerificationToResponse(user)
	return &resp, nil
}

var allowedDocumentExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// evaluateDocument is the automated verification check run against the
// submitted document's filename and declared legal name. The checks run in
// order; the first failure wins.
func evaluateDocument(hostType entity.HostType, documentName, legalName string) (bool, string) {
	name := strings.ToLower(documentName)

	if !allowedDocumentExtensions[filepath.Ext(name)] {
		return false, "Unsupported document format. Upload a JPG, PNG or PDF file."
	}

	if strings.Contains(name, "fake") || strings.Contains(name, "invalid") {
		return false, "Document appears to be invalid or digitally altered."
	}

	if strings.Contains(name, "blur") {
		return false, "Document is blurry. Please upload a clear image."
	}

	if hostType == entity.HostTypeBusiness {
		if strings.Contains(name, "passport") || strings.Contains(name, "id") {
			return false, "Business accounts must submit a business registration certificate, not a personal document."
		}
	} else {
		if strings.Contains(name, "business") || strings.Contains(name, "certificate") {
			return false, "Individual accounts must submit a personal identity document, not business papers."
		}
	}

	if strings.Contains(strings.ToLower(legalName), "mismatch") {
		return false, "The legal name does not match the name on the document."
	}

	return true, ""
}
