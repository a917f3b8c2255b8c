package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-reels/internal/data/entity"
	"travel-reels/pkg/apperr"
	"travel-reels/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateUnlessActive persists the booking only if no active (non-terminal,
	// not soft-deleted) booking exists for the same (traveler, reel). The
	// check and insert run in one transaction; a partial unique index closes
	// the race between concurrent creators. Returns Conflict on a duplicate.
	CreateUnlessActive(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindByTraveler excludes soft-deleted rows: the flag only hides the
	// booking from the traveler's own listing.
	FindByTraveler(ctx context.Context, travelerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByTraveler(ctx context.Context, travelerID uuid.UUID) (int64, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.Booking, error)

	// UpdateStatusFrom is a compare-and-swap: the write only lands when the
	// row still holds the expected status, so two concurrent actors cannot
	// both win. Returns false when the row was missing or had moved on.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error)

	// UpdateSchedule rewrites date/guests/price, guarded against terminal
	// states at the storage layer. Returns false when no non-terminal row
	// matched.
	UpdateSchedule(ctx context.Context, id uuid.UUID, bookingDate time.Time, guests int, totalPrice float64) (bool, error)

	// MarkDeletedByTraveler sets the soft-delete flag. Idempotent.
	MarkDeletedByTraveler(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, traveler_id, host_id, reel_id, booking_date, phone_number,
	traveler_name, guests, total_price, special_requests, status, deleted_by_traveler,
	created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.TravelerID,
		&booking.HostID,
		&booking.ReelID,
		&booking.BookingDate,
		&booking.PhoneNumber,
		&booking.TravelerName,
		&booking.Guests,
		&booking.TotalPrice,
		&booking.SpecialRequests,
		&booking.Status,
		&booking.DeletedByTraveler,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) CreateUnlessActive(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE traveler_id = $1 AND reel_id = $2
			  AND status NOT IN ('completed', 'cancelled')
			  AND deleted_by_traveler = FALSE
		)
	`, booking.TravelerID, booking.ReelID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check active booking",
			zap.Error(err),
			zap.String("traveler_id", booking.TravelerID.String()),
			zap.String("reel_id", booking.ReelID.String()),
		)
		return fmt.Errorf("check active booking: %w", err)
	}

	if exists {
		return apperr.Conflict("you already have an active booking for this reel")
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, traveler_id, host_id, reel_id, booking_date, phone_number,
		                      traveler_name, guests, total_price, special_requests, status,
		                      deleted_by_traveler, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		booking.ID,
		booking.TravelerID,
		booking.HostID,
		booking.ReelID,
		booking.BookingDate,
		booking.PhoneNumber,
		booking.TravelerName,
		booking.Guests,
		booking.TotalPrice,
		booking.SpecialRequests,
		booking.Status,
		booking.DeletedByTraveler,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost the race to a concurrent creator; the unique index caught it.
			return apperr.Conflict("you already have an active booking for this reel")
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("traveler_id", booking.TravelerID.String()),
			zap.String("reel_id", booking.ReelID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.Conflict("you already have an active booking for this reel")
		}
		r.log.Error("Failed to commit booking", zap.Error(err))
		return fmt.Errorf("commit booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByTraveler(ctx context.Context, travelerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE traveler_id = $1 AND deleted_by_traveler = FALSE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, travelerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by traveler",
			zap.Error(err),
			zap.String("traveler_id", travelerID.String()),
		)
		return nil, fmt.Errorf("find bookings by traveler %s: %w", travelerID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}

func (r *bookingRepository) CountByTraveler(ctx context.Context, travelerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE traveler_id = $1 AND deleted_by_traveler = FALSE`

	var count int64
	err := r.db.QueryRow(ctx, query, travelerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by traveler",
			zap.Error(err),
			zap.String("traveler_id", travelerID.String()),
		)
		return 0, fmt.Errorf("count bookings by traveler %s: %w", travelerID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByHost(ctx context.Context, hostID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE host_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		r.log.Error("Failed to find bookings by host",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return nil, fmt.Errorf("find bookings by host %s: %w", hostID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}

func collectBookings(rows pgx.Rows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update booking %s status: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, bookingDate time.Time, guests int, totalPrice float64) (bool, error) {
	query := `
		UPDATE bookings
		SET booking_date = $2, guests = $3, total_price = $4, updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('completed', 'cancelled')
	`

	result, err := r.db.Exec(ctx, query, id, bookingDate, guests, totalPrice)
	if err != nil {
		r.log.Error("Failed to reschedule booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("reschedule booking %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) MarkDeletedByTraveler(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bookings SET deleted_by_traveler = TRUE WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to soft-delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("soft-delete booking %s: %w", id.String(), err)
	}

	return nil
}
