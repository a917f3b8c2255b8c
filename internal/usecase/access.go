package usecase

import (
	"context"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/data/repository"
	"travel-reels/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessService is the single decision point consulted before every mutating
// operation on a host's resources. The delegation lookup happens on every
// call: a revoked grant must not be honored, so nothing here is cached.
type AccessService interface {
	CanAct(ctx context.Context, principal entity.Principal, hostID uuid.UUID, capability entity.Capability) (bool, error)

	// Authorize converts a denial into Forbidden with a message that does not
	// reveal whether the resource exists or which branch denied.
	Authorize(ctx context.Context, principal entity.Principal, hostID uuid.UUID, capability entity.Capability) error
}

type accessService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAccessService(repo *repository.Repository, log *zap.Logger) AccessService {
	return &accessService{
		repo: repo,
		log:  log.With(zap.String("service", "access")),
	}
}

func (s *accessService) CanAct(ctx context.Context, principal entity.Principal, hostID uuid.UUID, capability entity.Capability) (bool, error) {
	// Platform administrators may act on any host's resources.
	if principal.Role == entity.RoleAdmin {
		return true, nil
	}

	// Direct ownership.
	if principal.ID == hostID {
		return true, nil
	}

	delegation, err := s.repo.Team.FindByHostAndMember(ctx, hostID, principal.ID)
	if err != nil {
		return false, apperr.Upstream("could not evaluate access", err)
	}

	if delegation == nil {
		return false, nil
	}

	return delegation.Role.Grants(capability), nil
}

func (s *accessService) Authorize(ctx context.Context, principal entity.Principal, hostID uuid.UUID, capability entity.Capability) error {
	allowed, err := s.CanAct(ctx, principal, hostID, capability)
	if err != nil {
		return err
	}

	if !allowed {
		s.log.Warn("Access denied",
			zap.String("principal_id", principal.ID.String()),
			zap.String("host_id", hostID.String()),
			zap.String("capability", string(capability)),
		)
		return apperr.Forbidden("access denied")
	}

	return nil
}
