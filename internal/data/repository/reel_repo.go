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

type ReelRepository interface {
	Create(ctx context.Context, reel *entity.Reel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reel, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.Reel, error)
	Update(ctx context.Context, reel *entity.Reel) error
	UpdateModeration(ctx context.Context, reel *entity.Reel) error
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the impression counter atomically at the storage
	// layer; read-modify-write in application code loses updates under
	// concurrent viewers.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
	AddLikes(ctx context.Context, id uuid.UUID, delta int) (int64, error)
}

type reelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReelRepository(db database.PgxIface, log *zap.Logger) ReelRepository {
	return &reelRepository{
		db:  db,
		log: log.With(zap.String("repository", "reel")),
	}
}

const reelColumns = `id, host_id, video_url, title, description, location, price, category,
	is_active, expires_at, moderation_status, moderation_feedback, views, likes_count,
	created_at, updated_at`

func scanReel(row pgx.Row) (*entity.Reel, error) {
	var reel entity.Reel
	err := row.Scan(
		&reel.ID,
		&reel.HostID,
		&reel.VideoURL,
		&reel.Title,
		&reel.Description,
		&reel.Location,
		&reel.Price,
		&reel.Category,
		&reel.IsActive,
		&reel.ExpiresAt,
		&reel.ModerationStatus,
		&reel.ModerationFeedback,
		&reel.Views,
		&reel.LikesCount,
		&reel.CreatedAt,
		&reel.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reel, nil
}

func (r *reelRepository) Create(ctx context.Context, reel *entity.Reel) error {
	query := `
		INSERT INTO reels (id, host_id, video_url, title, description, location, price,
		                   category, is_active, expires_at, moderation_status, views,
		                   likes_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		reel.ID,
		reel.HostID,
		reel.VideoURL,
		reel.Title,
		reel.Description,
		reel.Location,
		reel.Price,
		reel.Category,
		reel.IsActive,
		reel.ExpiresAt,
		reel.ModerationStatus,
		reel.Views,
		reel.LikesCount,
		reel.CreatedAt,
		reel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reel",
			zap.Error(err),
			zap.String("host_id", reel.HostID.String()),
			zap.String("title", reel.Title),
		)
		return fmt.Errorf("create reel %s: %w", reel.Title, err)
	}

	return nil
}

func (r *reelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reel, error) {
	query := `SELECT ` + reelColumns + ` FROM reels WHERE id = $1`

	reel, err := scanReel(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find reel by ID",
			zap.Error(err),
			zap.String("reel_id", id.String()),
		)
		return nil, fmt.Errorf("find reel by ID %s: %w", id.String(), err)
	}

	return reel, nil
}

func (r *reelRepository) FindByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.Reel, error) {
	query := `SELECT ` + reelColumns + ` FROM reels WHERE host_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		r.log.Error("Failed to find reels by host",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return nil, fmt.Errorf("find reels by host %s: %w", hostID.String(), err)
	}
	defer rows.Close()

	var reels []*entity.Reel
	for rows.Next() {
		reel, err := scanReel(rows)
		if err != nil {
			r.log.Error("Failed to scan reel row", zap.Error(err))
			return nil, fmt.Errorf("scan reel row: %w", err)
		}
		reels = append(reels, reel)
	}

	return reels, nil
}

func (r *reelRepository) Update(ctx context.Context, reel *entity.Reel) error {
	query := `
		UPDATE reels
		SET title = $2, description = $3, location = $4, price = $5, category = $6,
		    is_active = $7, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		reel.ID,
		reel.Title,
		reel.Description,
		reel.Location,
		reel.Price,
		reel.Category,
		reel.IsActive,
	)

	if err != nil {
		r.log.Error("Failed to update reel",
			zap.Error(err),
			zap.String("reel_id", reel.ID.String()),
		)
		return fmt.Errorf("update reel %s: %w", reel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reel %s not found", reel.ID.String())
	}

	return nil
}

func (r *reelRepository) UpdateModeration(ctx context.Context, reel *entity.Reel) error {
	query := `
		UPDATE reels
		SET moderation_status = $2, moderation_feedback = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		reel.ID,
		reel.ModerationStatus,
		reel.ModerationFeedback,
		reel.IsActive,
	)

	if err != nil {
		r.log.Error("Failed to update reel moderation",
			zap.Error(err),
			zap.String("reel_id", reel.ID.String()),
		)
		return fmt.Errorf("update reel %s moderation: %w", reel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reel %s not found", reel.ID.String())
	}

	return nil
}

func (r *reelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reels WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reel",
			zap.Error(err),
			zap.String("reel_id", id.String()),
		)
		return fmt.Errorf("delete reel %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reel %s not found", id.String())
	}

	r.log.Info("Reel deleted", zap.String("reel_id", id.String()))
	return nil
}

func (r *reelRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `UPDATE reels SET views = views + 1 WHERE id = $1 RETURNING views`

	var views int64
	err := r.db.QueryRow(ctx, query, id).Scan(&views)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("reel %s not found", id.String())
	}
	if err != nil {
		r.log.Error("Failed to increment reel views",
			zap.Error(err),
			zap.String("reel_id", id.String()),
		)
		return 0, fmt.Errorf("increment views for reel %s: %w", id.String(), err)
	}

	return views, nil
}

func (r *reelRepository) AddLikes(ctx context.Context, id uuid.UUID, delta int) (int64, error) {
	query := `
		UPDATE reels
		SET likes_count = GREATEST(0, likes_count + $2)
		WHERE id = $1
		RETURNING likes_count
	`

	var likes int64
	err := r.db.QueryRow(ctx, query, id, delta).Scan(&likes)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("reel %s not found", id.String())
	}
	if err != nil {
		r.log.Error("Failed to adjust reel likes",
			zap.Error(err),
			zap.String("reel_id", id.String()),
		)
		return 0, fmt.Errorf("adjust likes for reel %s: %w", id.String(), err)
	}

	return likes, nil
}
