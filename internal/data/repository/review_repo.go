package repository

import (
	"context"
	"fmt"

	"travel-reels/internal/data/entity"
	"travel-reels/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)
	FindByReel(ctx context.Context, reelID uuid.UUID) ([]*entity.Review, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.Review, error)
	UpdateReply(ctx context.Context, id uuid.UUID, reply string) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, traveler_id, reel_id, booking_id, rating, comment, host_reply,
	created_at, updated_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.TravelerID,
		&review.ReelID,
		&review.BookingID,
		&review.Rating,
		&review.Comment,
		&review.HostReply,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, traveler_id, reel_id, booking_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.TravelerID,
		review.ReelID,
		review.BookingID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("booking_id", review.BookingID.String()),
		)
		return fmt.Errorf("create review for booking %s: %w", review.BookingID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE booking_id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		r.log.Error("Failed to find review by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find review by booking %s: %w", bookingID.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByReel(ctx context.Context, reelID uuid.UUID) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE reel_id = $1 ORDER BY created_at DESC`

	return r.queryReviews(ctx, query, reelID)
}

func (r *reviewRepository) FindByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT r.id, r.traveler_id, r.reel_id, r.booking_id, r.rating, r.comment, r.host_reply,
		       r.created_at, r.updated_at
		FROM reviews r
		JOIN reels ON reels.id = r.reel_id
		WHERE reels.host_id = $1
		ORDER BY r.created_at DESC
	`

	return r.queryReviews(ctx, query, hostID)
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, arg any) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) UpdateReply(ctx context.Context, id uuid.UUID, reply string) error {
	query := `UPDATE reviews SET host_reply = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, reply)
	if err != nil {
		r.log.Error("Failed to update review reply",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("update reply for review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	return nil
}
