package usecase

import (
	"context"
	"sort"
	"strings"
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

// reelLifetime is how long a published reel stays bookable before it expires.
const reelLifetime = 90 * 24 * time.Hour

type ReelService interface {
	// CreateReel publishes a listing under the principal's own account. Only a
	// verified host account passes the trust gate; the content moderation
	// evaluator then independently approves or rejects the listing.
	CreateReel(ctx context.Context, principal entity.Principal, req *request.CreateReelRequest) (*response.ReelResponse, error)

	GetReel(ctx context.Context, reelID string) (*response.ReelResponse, error)
	GetHostReels(ctx context.Context, principal entity.Principal, hostID uuid.UUID) ([]response.ReelResponse, error)
	GetHostAnalytics(ctx context.Context, principal entity.Principal, hostID uuid.UUID) (*response.ReelAnalyticsResponse, error)

	UpdateReel(ctx context.Context, principal entity.Principal, reelID string, req *request.UpdateReelRequest) (*response.ReelResponse, error)
	DeleteReel(ctx context.Context, principal entity.Principal, reelID string) error

	// RecordView bumps the raw impression counter. Unauthenticated, no
	// dedup: every call counts.
	RecordView(ctx context.Context, reelID string) (*response.ViewsResponse, error)

	// ToggleLike flips the caller's like on the reel and returns the new state.
	ToggleLike(ctx context.Context, principal entity.Principal, reelID string) (*response.LikeResponse, error)
}

type reelService struct {
	repo   *repository.Repository
	access AccessService
	log    *zap.Logger
}

func NewReelService(repo *repository.Repository, access AccessService, log *zap.Logger) ReelService {
	return &reelService{
		repo:   repo,
		access: access,
		log:    log.With(zap.String("service", "reel")),
	}
}

func (s *reelService) CreateReel(ctx context.Context, principal entity.Principal, req *request.CreateReelRequest) (*response.ReelResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	if principal.Role != entity.RoleHost && principal.Role != entity.RoleAdmin {
		return nil, apperr.Forbidden("only host accounts can publish reels")
	}

	host, err := s.repo.User.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, storageErr("could not load account", err)
	}
	if host == nil {
		return nil, apperr.NotFound("account not found")
	}

	if host.VerificationStatus != entity.VerificationVerified {
		return nil, apperr.Conflict("your account must be verified before publishing reels")
	}

	now := time.Now()
	expiresAt := now.Add(reelLifetime)
	reel := &entity.Reel{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HostID:           principal.ID,
		VideoURL:         req.VideoURL,
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		Price:            req.Price,
		Category:         req.Category,
		IsActive:         true,
		ExpiresAt:        &expiresAt,
		ModerationStatus: entity.ModerationPending,
	}

	if err := s.repo.Reel.Create(ctx, reel); err != nil {
		return nil, storageErr("could not create reel", err)
	}

	// The moderation verdict is written as a second step so the listing is
	// visible in the host's dashboard even when it lands rejected.
	approved, feedback := moderateReel(reel.Title, reel.Description)
	if approved {
		reel.ModerationStatus = entity.ModerationApproved
	} else {
		reel.ModerationStatus = entity.ModerationRejected
		reel.ModerationFeedback = &feedback
		reel.IsActive = false
	}

	if err := s.repo.Reel.UpdateModeration(ctx, reel); err != nil {
		return nil, storageErr("could not moderate reel", err)
	}

	s.log.Info("Reel published",
		zap.String("reel_id", reel.ID.String()),
		zap.String("host_id", principal.ID.String()),
		zap.String("moderation_status", string(reel.ModerationStatus)),
	)

	resp := response.ReelToResponse(reel)
	return &resp, nil
}

// moderateReel is the automated content gate. A match in either field rejects
// the listing outright; borderline content is someone else's queue.
func moderateReel(title string, description *string) (bool, string) {
	blocked := []string{"spam", "casino", "gamble", "crypto", "forex", "adult"}

	content := strings.ToLower(title)
	if description != nil {
		content += " " + strings.ToLower(*description)
	}

	for _, word := range blocked {
		if strings.Contains(content, word) {
			return false, "Listing rejected: content violates marketplace guidelines."
		}
	}

	return true, ""
}

func (s *reelService) GetReel(ctx context.Context, reelID string) (*response.ReelResponse, error) {
	reel, err := s.findReel(ctx, reelID)
	if err != nil {
		return nil, err
	}

	resp := response.ReelToResponse(reel)
	return &resp, nil
}

func (s *reelService) GetHostReels(ctx context.Context, principal entity.Principal, hostID uuid.UUID) ([]response.ReelResponse, error) {
	if err := s.access.Authorize(ctx, principal, hostID, entity.CapabilityRead); err != nil {
		return nil, err
	}

	reels, err := s.repo.Reel.FindByHost(ctx, hostID)
	if err != nil {
		return nil, storageErr("could not load reels", err)
	}

	responses := make([]response.ReelResponse, 0, len(reels))
	for _, reel := range reels {
		responses = append(responses, response.ReelToResponse(reel))
	}
	return responses, nil
}

func (s *reelService) GetHostAnalytics(ctx context.Context, principal entity.Principal, hostID uuid.UUID) (*response.ReelAnalyticsResponse, error) {
	if err := s.access.Authorize(ctx, principal, hostID, entity.CapabilityRead); err != nil {
		return nil, err
	}

	reels, err := s.repo.Reel.FindByHost(ctx, hostID)
	if err != nil {
		return nil, storageErr("could not load reels", err)
	}

	analytics := &response.ReelAnalyticsResponse{TotalReels: len(reels)}
	for _, reel := range reels {
		analytics.TotalViews += reel.Views
		analytics.TotalLikes += reel.LikesCount
	}

	sort.Slice(reels, func(i, j int) bool {
		return reels[i].Views > reels[j].Views
	})
	top := reels
	if len(top) > 5 {
		top = top[:5]
	}
	for _, reel := range top {
		analytics.TopReels = append(analytics.TopReels, response.ReelToResponse(reel))
	}

	return analytics, nil
}

func (s *reelService) UpdateReel(ctx context.Context, principal entity.Principal, reelID string, req *request.UpdateReelRequest) (*response.ReelResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	reel, err := s.findReel(ctx, reelID)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(ctx, principal, reel.HostID, entity.CapabilityManageReels); err != nil {
		return nil, err
	}

	if req.Title != nil {
		reel.Title = *req.Title
	}
	if req.Description != nil {
		reel.Description = req.Description
	}
	if req.Location != nil {
		reel.Location = req.Location
	}
	if req.Price != nil {
		reel.Price = req.Price
	}
	if req.Category != nil {
		reel.Category = req.Category
	}
	if req.IsActive != nil {
		reel.IsActive = *req.IsActive
	}

	if err := s.repo.Reel.Update(ctx, reel); err != nil {
		return nil, storageErr("could not update reel", err)
	}

	resp := response.ReelToResponse(reel)
	return &resp, nil
}

func (s *reelService) DeleteReel(ctx context.Context, principal entity.Principal, reelID string) error {
	reel, err := s.findReel(ctx, reelID)
	if err != nil {
		return err
	}

	if err := s.access.Authorize(ctx, principal, reel.HostID, entity.CapabilityDelete); err != nil {
		return err
	}

	if err := s.repo.Reel.Delete(ctx, reel.ID); err != nil {
		return storageErr("could not delete reel", err)
	}

	s.log.Info("Reel removed",
		zap.String("reel_id", reel.ID.String()),
		zap.String("actor_id", principal.ID.String()),
	)

	return nil
}

func (s *reelService) RecordView(ctx context.Context, reelID string) (*response.ViewsResponse, error) {
	id, err := uuid.Parse(reelID)
	if err != nil {
		return nil, apperr.Invalid("invalid reel id")
	}

	views, err := s.repo.Reel.IncrementViews(ctx, id)
	if err != nil {
		return nil, storageErr("could not record view", err)
	}

	return &response.ViewsResponse{Views: views}, nil
}

func (s *reelService) ToggleLike(ctx context.Context, principal entity.Principal, reelID string) (*response.LikeResponse, error) {
	reel, err := s.findReel(ctx, reelID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Like.Find(ctx, reel.ID, principal.ID)
	if err != nil {
		return nil, storageErr("could not load like", err)
	}

	if existing != nil {
		if err := s.repo.Like.Delete(ctx, reel.ID, principal.ID); err != nil {
			return nil, storageErr("could not remove like", err)
		}
		likes, err := s.repo.Reel.AddLikes(ctx, reel.ID, -1)
		if err != nil {
			return nil, storageErr("could not update like count", err)
		}
		return &response.LikeResponse{Liked: false, LikesCount: likes}, nil
	}

	like := &entity.Like{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReelID: reel.ID,
		UserID: principal.ID,
	}
	if err := s.repo.Like.Create(ctx, like); err != nil {
		return nil, storageErr("could not record like", err)
	}

	likes, err := s.repo.Reel.AddLikes(ctx, reel.ID, 1)
	if err != nil {
		return nil, storageErr("could not update like count", err)
	}

	return &response.LikeResponse{Liked: true, LikesCount: likes}, nil
}

func (s *reelService) findReel(ctx context.Context, reelID string) (*entity.Reel, error) {
	id, err := uuid.Parse(reelID)
	if err != nil {
		return nil, apperr.Invalid("invalid reel id")
	}

	reel, err := s.repo.Reel.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("could not load reel", err)
	}
	if reel == nil {
		return nil, apperr.NotFound("reel not found")
	}

	return reel, nil
}
