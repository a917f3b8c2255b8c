package usecase

import (
	"context"
	"time"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/data/repository"
	"travel-reels/internal/dto/request"
	"travel-reels/internal/dto/response"
	"travel-reels/pkg/apperr"
	"travel-reels/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TeamService interface {
	// AddMember grants an existing account a delegated role on the caller's
	// host account. One grant per member; duplicates conflict.
	AddMember(ctx context.Context, principal entity.Principal, req *request.AddTeamMemberRequest) (*response.TeamMemberResponse, error)

	ListTeam(ctx context.Context, principal entity.Principal) ([]response.TeamMemberResponse, error)

	// RemoveMember revokes a grant. The next access check sees the
	// revocation; nothing is cached.
	RemoveMember(ctx context.Context, principal entity.Principal, memberRecordID string) error

	// ListManaging lists the host accounts the caller holds a grant for.
	ListManaging(ctx context.Context, principal entity.Principal) ([]response.ManagedHostResponse, error)
}

type teamService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTeamService(repo *repository.Repository, log *zap.Logger) TeamService {
	return &teamService{
		repo: repo,
		log:  log.With(zap.String("service", "team")),
	}
}

func (s *teamService) AddMember(ctx context.Context, principal entity.Principal, req *request.AddTeamMemberRequest) (*response.TeamMemberResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	member, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, storageErr("could not look up account", err)
	}
	if member == nil {
		return nil, apperr.NotFound("no account exists with that email")
	}

	if member.ID == principal.ID {
		return nil, apperr.Conflict("you cannot add yourself to your own team")
	}

	existing, err := s.repo.Team.FindByHostAndMember(ctx, principal.ID, member.ID)
	if err != nil {
		return nil, storageErr("could not look up team", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("this user is already a team member")
	}

	record := &entity.TeamMember{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		HostID:      principal.ID,
		MemberID:    member.ID,
		Role:        entity.TeamRole(req.Role),
		Permissions: req.Permissions,
	}

	if err := s.repo.Team.Create(ctx, record); err != nil {
		return nil, storageErr("could not add team member", err)
	}

	s.log.Info("Team member added",
		zap.String("host_id", principal.ID.String()),
		zap.String("member_id", member.ID.String()),
		zap.String("role", req.Role),
	)

	resp := response.TeamMemberToResponse(record, member)
	return &resp, nil
}

func (s *teamService) ListTeam(ctx context.Context, principal entity.Principal) ([]response.TeamMemberResponse, error) {
	members, err := s.repo.Team.FindByHost(ctx, principal.ID)
	if err != nil {
		return nil, storageErr("could not load team", err)
	}

	responses := make([]response.TeamMemberResponse, 0, len(members))
	for _, member := range members {
		user, err := s.repo.User.FindByID(ctx, member.MemberID)
		if err != nil {
			return nil, storageErr("could not load team member", err)
		}
		responses = append(responses, response.TeamMemberToResponse(member, user))
	}

	return responses, nil
}

func (s *teamService) RemoveMember(ctx context.Context, principal entity.Principal, memberRecordID string) error {
	id, err := uuid.Parse(memberRecordID)
	if err != nil {
		return apperr.Invalid("invalid team member id")
	}

	// Scoped to the caller's own team: a grant id belonging to another host
	// reads as not found.
	if err := s.repo.Team.Delete(ctx, id, principal.ID); err != nil {
		return storageErr("could not remove team member", err)
	}

	s.log.Info("Team member removed",
		zap.String("host_id", principal.ID.String()),
		zap.String("record_id", id.String()),
	)

	return nil
}

func (s *teamService) ListManaging(ctx context.Context, principal entity.Principal) ([]response.ManagedHostResponse, error) {
	grants, err := s.repo.Team.FindByMember(ctx, principal.ID)
	if err != nil {
		return nil, storageErr("could not load managed hosts", err)
	}

	responses := make([]response.ManagedHostResponse, 0, len(grants))
	for _, grant := range grants {
		host, err := s.repo.User.FindByID(ctx, grant.HostID)
		if err != nil {
			return nil, storageErr("could not load host account", err)
		}
		if host == nil {
			continue
		}
		responses = append(responses, response.ManagedHostResponse{
			DelegationID: grant.ID.String(),
			Role:         string(grant.Role),
			Host:         response.UserToResponse(host),
		})
	}

	return responses, nil
}
