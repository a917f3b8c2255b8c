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

type LikeRepository interface {
	Find(ctx context.Context, reelID, userID uuid.UUID) (*entity.Like, error)
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, reelID, userID uuid.UUID) error
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Find(ctx context.Context, reelID, userID uuid.UUID) (*entity.Like, error) {
	query := `SELECT id, reel_id, user_id, created_at FROM likes WHERE reel_id = $1 AND user_id = $2`

	var like entity.Like
	err := r.db.QueryRow(ctx, query, reelID, userID).Scan(
		&like.ID,
		&like.ReelID,
		&like.UserID,
		&like.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find like",
			zap.Error(err),
			zap.String("reel_id", reelID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find like: %w", err)
	}

	return &like, nil
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	query := `INSERT INTO likes (id, reel_id, user_id, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, like.ID, like.ReelID, like.UserID, like.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create like",
			zap.Error(err),
			zap.String("reel_id", like.ReelID.String()),
		)
		return fmt.Errorf("create like: %w", err)
	}

	return nil
}

func (r *likeRepository) Delete(ctx context.Context, reelID, userID uuid.UUID) error {
	query := `DELETE FROM likes WHERE reel_id = $1 AND user_id = $2`

	_, err := r.db.Exec(ctx, query, reelID, userID)
	if err != nil {
		r.log.Error("Failed to delete like",
			zap.Error(err),
			zap.String("reel_id", reelID.String()),
		)
		return fmt.Errorf("delete like: %w", err)
	}

	return nil
}
