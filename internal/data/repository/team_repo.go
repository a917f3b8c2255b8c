package repository

import (
	"context"
	"errors"
	"fmt"

	"travel-reels/internal/data/entity"
	"travel-reels/pkg/apperr"
	"travel-reels/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type TeamRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	// FindByHostAndMember is the delegation lookup consulted by the access
	// decision point. Never cached: revocation must bite on the next call.
	FindByHostAndMember(ctx context.Context, hostID, memberID uuid.UUID) (*entity.TeamMember, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.TeamMember, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.TeamMember, error)
	Delete(ctx context.Context, id, hostID uuid.UUID) error
}

type teamRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTeamRepository(db database.PgxIface, log *zap.Logger) TeamRepository {
	return &teamRepository{
		db:  db,
		log: log.With(zap.String("repository", "team")),
	}
}

const teamColumns = `id, host_id, member_id, role, permissions, created_at`

func scanTeamMember(row pgx.Row) (*entity.TeamMember, error) {
	var member entity.TeamMember
	err := row.Scan(
		&member.ID,
		&member.HostID,
		&member.MemberID,
		&member.Role,
		&member.Permissions,
		&member.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (id, host_id, member_id, role, permissions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		member.ID,
		member.HostID,
		member.MemberID,
		member.Role,
		member.Permissions,
		member.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.Conflict("user is already a team member")
		}
		r.log.Error("Failed to create team member",
			zap.Error(err),
			zap.String("host_id", member.HostID.String()),
			zap.String("member_id", member.MemberID.String()),
		)
		return fmt.Errorf("create team member: %w", err)
	}

	return nil
}

func (r *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members WHERE id = $1`

	member, err := scanTeamMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find team member by ID",
			zap.Error(err),
			zap.String("team_member_id", id.String()),
		)
		return nil, fmt.Errorf("find team member %s: %w", id.String(), err)
	}

	return member, nil
}

func (r *teamRepository) FindByHostAndMember(ctx context.Context, hostID, memberID uuid.UUID) (*entity.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members WHERE host_id = $1 AND member_id = $2`

	member, err := scanTeamMember(r.db.QueryRow(ctx, query, hostID, memberID))
	if err != nil {
		r.log.Error("Failed to find delegation",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
			zap.String("member_id", memberID.String()),
		)
		return nil, fmt.Errorf("find delegation for host %s: %w", hostID.String(), err)
	}

	return member, nil
}

func (r *teamRepository) FindByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members WHERE host_id = $1 ORDER BY created_at`

	return r.queryMembers(ctx, query, hostID)
}

func (r *teamRepository) FindByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members WHERE member_id = $1 ORDER BY created_at`

	return r.queryMembers(ctx, query, memberID)
}

func (r *teamRepository) queryMembers(ctx context.Context, query string, arg any) ([]*entity.TeamMember, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		r.log.Error("Failed to list team members", zap.Error(err))
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []*entity.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			r.log.Error("Failed to scan team member row", zap.Error(err))
			return nil, fmt.Errorf("scan team member row: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

func (r *teamRepository) Delete(ctx context.Context, id, hostID uuid.UUID) error {
	query := `DELETE FROM team_members WHERE id = $1 AND host_id = $2`

	result, err := r.db.Exec(ctx, query, id, hostID)
	if err != nil {
		r.log.Error("Failed to delete team member",
			zap.Error(err),
			zap.String("team_member_id", id.String()),
		)
		return fmt.Errorf("delete team member %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("team member not found")
	}

	return nil
}
