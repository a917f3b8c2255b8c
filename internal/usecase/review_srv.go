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

type ReviewService interface {
	// CreateReview attaches a review to one of the traveler's completed
	// bookings. One review per booking.
	CreateReview(ctx context.Context, principal entity.Principal, req *request.CreateReviewRequest) (*response.ReviewResponse, error)

	// ReplyReview writes the host-side reply. Requires the reply_reviews
	// capability on the reviewed reel's host.
	ReplyReview(ctx context.Context, principal entity.Principal, reviewID string, req *request.ReplyReviewRequest) (*response.ReviewResponse, error)

	ListByReel(ctx context.Context, reelID string) ([]response.ReviewResponse, error)
	ListForHost(ctx context.Context, principal entity.Principal, hostID uuid.UUID) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo   *repository.Repository
	access AccessService
	log    *zap.Logger
}

func NewReviewService(repo *repository.Repository, access AccessService, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		access: access,
		log:    log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, principal entity.Principal, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, apperr.Invalid("invalid booking id")
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, storageErr("could not load booking", err)
	}
	// Another traveler's booking reads as not found rather than forbidden so
	// booking ids cannot be probed.
	if booking == nil || booking.TravelerID != principal.ID {
		return nil, apperr.NotFound("booking not found")
	}

	if booking.Status != entity.BookingStatusCompleted {
		return nil, apperr.Conflict("only completed bookings can be reviewed")
	}

	existing, err := s.repo.Review.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, storageErr("could not look up review", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("this booking already has a review")
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TravelerID: principal.ID,
		ReelID:     booking.ReelID,
		BookingID:  bookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, storageErr("could not create review", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("booking_id", bookingID.String()),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ReplyReview(ctx context.Context, principal entity.Principal, reviewID string, req *request.ReplyReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperr.Invalid("invalid review id")
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("could not load review", err)
	}
	if review == nil {
		return nil, apperr.NotFound("review not found")
	}

	reel, err := s.repo.Reel.FindByID(ctx, review.ReelID)
	if err != nil {
		return nil, storageErr("could not load reel", err)
	}
	if reel == nil {
		return nil, apperr.NotFound("reel not found")
	}

	if err := s.access.Authorize(ctx, principal, reel.HostID, entity.CapabilityReplyReviews); err != nil {
		return nil, err
	}

	if err := s.repo.Review.UpdateReply(ctx, id, req.Reply); err != nil {
		return nil, storageErr("could not save reply", err)
	}

	review.HostReply = &req.Reply
	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListByReel(ctx context.Context, reelID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(reelID)
	if err != nil {
		return nil, apperr.Invalid("invalid reel id")
	}

	reviews, err := s.repo.Review.FindByReel(ctx, id)
	if err != nil {
		return nil, storageErr("could not load reviews", err)
	}

	return toReviewResponses(reviews), nil
}

func (s *reviewService) ListForHost(ctx context.Context, principal entity.Principal, hostID uuid.UUID) ([]response.ReviewResponse, error) {
	if err := s.access.Authorize(ctx, principal, hostID, entity.CapabilityRead); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByHost(ctx, hostID)
	if err != nil {
		return nil, storageErr("could not load reviews", err)
	}

	return toReviewResponses(reviews), nil
}

func toReviewResponses(reviews []*entity.Review) []response.ReviewResponse {
	responses := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, response.ReviewToResponse(review))
	}
	return responses
}
