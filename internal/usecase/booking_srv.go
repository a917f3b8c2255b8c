package usecase

import (
	"context"
	"fmt"
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

type BookingService interface {
	// CreateBooking reserves a reel for the traveler. The total price is
	// computed server-side from the reel's current unit price; client-supplied
	// totals are never trusted.
	CreateBooking(ctx context.Context, principal entity.Principal, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	GetTravelerBookings(ctx context.Context, principal entity.Principal, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// GetHostBookings lists bookings against hostID's reels. hostID may be the
	// principal's own id or a host the principal is delegated for.
	GetHostBookings(ctx context.Context, principal entity.Principal, hostID uuid.UUID) ([]response.BookingResponse, error)

	// UpdateStatus is the host-side transition path, bound by the transition
	// table. Requires the manage_bookings capability on the booking's host.
	UpdateStatus(ctx context.Context, principal entity.Principal, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)

	// CancelBooking is the traveler-side path: any non-terminal booking the
	// traveler owns may be cancelled.
	CancelBooking(ctx context.Context, principal entity.Principal, bookingID string) (*response.BookingResponse, error)

	RescheduleBooking(ctx context.Context, principal entity.Principal, bookingID string, req *request.RescheduleBookingRequest) (*response.BookingResponse, error)

	// SoftDeleteBooking hides the booking from the traveler's listing without
	// touching its lifecycle state. Idempotent.
	SoftDeleteBooking(ctx context.Context, principal entity.Principal, bookingID string) error
}

type bookingService struct {
	repo     *repository.Repository
	access   AccessService
	notifier Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, access AccessService, notifier Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		access:   access,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, principal entity.Principal, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	reelID, err := uuid.Parse(req.ReelID)
	if err != nil {
		return nil, apperr.Invalid("invalid reel id")
	}

	reel, err := s.repo.Reel.FindByID(ctx, reelID)
	if err != nil {
		return nil, storageErr("could not load reel", err)
	}
	if reel == nil {
		return nil, apperr.NotFound("reel not found")
	}

	now := time.Now()
	if !reel.Bookable(now) {
		return nil, apperr.Conflict("this reel is not open for booking")
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, apperr.Invalid("invalid booking date")
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TravelerID:      principal.ID,
		HostID:          reel.HostID,
		ReelID:          reelID,
		BookingDate:     bookingDate,
		PhoneNumber:     req.PhoneNumber,
		TravelerName:    req.TravelerName,
		Guests:          req.Guests,
		TotalPrice:      reel.UnitPrice() * float64(req.Guests),
		SpecialRequests: req.SpecialRequests,
		Status:          entity.BookingStatusPending,
	}

	if err := s.repo.Booking.CreateUnlessActive(ctx, booking); err != nil {
		return nil, storageErr("could not create booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("traveler_id", principal.ID.String()),
		zap.String("reel_id", reelID.String()),
		zap.Float64("total_price", booking.TotalPrice),
	)

	s.notifyUser(ctx, reel.HostID, entity.NotificationTypeBooking,
		"New booking received",
		fmt.Sprintf("%s booked %q for %d guest(s) on %s.", req.TravelerName, reel.Title, req.Guests, req.BookingDate),
	)
	s.notifyUser(ctx, principal.ID, entity.NotificationTypeBooking,
		"Booking requested",
		fmt.Sprintf("Your booking of %q for %s is awaiting confirmation.", reel.Title, req.BookingDate),
	)

	resp := response.BookingToResponse(booking, reel.Title)
	return &resp, nil
}

func (s *bookingService) GetTravelerBookings(ctx context.Context, principal entity.Principal, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByTraveler(ctx, principal.ID, page.Limit(), page.Offset())
	if err != nil {
		return nil, storageErr("could not load bookings", err)
	}

	total, err := s.repo.Booking.CountByTraveler(ctx, principal.ID)
	if err != nil {
		return nil, storageErr("could not count bookings", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), page.Page, page.Limit(), total), nil
}

func (s *bookingService) GetHostBookings(ctx context.Context, principal entity.Principal, hostID uuid.UUID) ([]response.BookingResponse, error) {
	if err := s.access.Authorize(ctx, principal, hostID, entity.CapabilityRead); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByHost(ctx, hostID)
	if err != nil {
		return nil, storageErr("could not load bookings", err)
	}

	return s.toResponses(ctx, bookings), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, principal entity.Principal, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(ctx, principal, booking.HostID, entity.CapabilityManageBookings); err != nil {
		return nil, err
	}

	target := entity.BookingStatus(req.Status)
	if !booking.Status.CanTransitionTo(target) {
		return nil, apperr.Conflict(fmt.Sprintf("cannot change booking from %s to %s", booking.Status, target))
	}

	// Compare-and-swap against the status we read; a concurrent transition
	// makes this a no-op and the caller gets a conflict rather than a
	// silently overwritten state.
	moved, err := s.repo.Booking.UpdateStatusFrom(ctx, booking.ID, booking.Status, target)
	if err != nil {
		return nil, storageErr("could not update booking status", err)
	}
	if !moved {
		return nil, apperr.Conflict("booking was updated concurrently, please retry")
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(target)),
		zap.String("actor_id", principal.ID.String()),
	)

	booking.Status = target
	s.notifyUser(ctx, booking.TravelerID, entity.NotificationTypeBooking,
		"Booking "+string(target),
		fmt.Sprintf("Your booking for %s is now %s.", booking.BookingDate.Format("2006-01-02"), target),
	)

	resp := response.BookingToResponse(booking, s.reelTitle(ctx, booking.ReelID))
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, principal entity.Principal, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.TravelerID != principal.ID {
		return nil, apperr.Forbidden("access denied")
	}

	if booking.Status.Terminal() {
		return nil, apperr.Conflict("this booking can no longer be cancelled")
	}

	moved, err := s.repo.Booking.UpdateStatusFrom(ctx, booking.ID, booking.Status, entity.BookingStatusCancelled)
	if err != nil {
		return nil, storageErr("could not cancel booking", err)
	}
	if !moved {
		return nil, apperr.Conflict("booking was updated concurrently, please retry")
	}

	s.log.Info("Booking cancelled by traveler",
		zap.String("booking_id", booking.ID.String()),
		zap.String("traveler_id", principal.ID.String()),
	)

	booking.Status = entity.BookingStatusCancelled
	s.notifyUser(ctx, booking.HostID, entity.NotificationTypeBooking,
		"Booking cancelled",
		fmt.Sprintf("%s cancelled their booking for %s.", booking.TravelerName, booking.BookingDate.Format("2006-01-02")),
	)

	resp := response.BookingToResponse(booking, s.reelTitle(ctx, booking.ReelID))
	return &resp, nil
}

func (s *bookingService) RescheduleBooking(ctx context.Context, principal entity.Principal, bookingID string, req *request.RescheduleBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.TravelerID != principal.ID {
		return nil, apperr.Forbidden("access denied")
	}

	if booking.Status.Terminal() {
		return nil, apperr.Conflict("this booking can no longer be rescheduled")
	}

	reel, err := s.repo.Reel.FindByID(ctx, booking.ReelID)
	if err != nil {
		return nil, storageErr("could not load reel", err)
	}
	if reel == nil || !reel.Bookable(time.Now()) {
		return nil, apperr.Conflict("this reel is not open for booking")
	}

	bookingDate := booking.BookingDate
	if req.BookingDate != nil {
		bookingDate, err = time.Parse("2006-01-02", *req.BookingDate)
		if err != nil {
			return nil, apperr.Invalid("invalid booking date")
		}
	}

	guests := booking.Guests
	if req.Guests != nil {
		guests = *req.Guests
	}

	// Guest count changes reprice at the reel's current rate.
	totalPrice := reel.UnitPrice() * float64(guests)

	moved, err := s.repo.Booking.UpdateSchedule(ctx, booking.ID, bookingDate, guests, totalPrice)
	if err != nil {
		return nil, storageErr("could not reschedule booking", err)
	}
	if !moved {
		return nil, apperr.Conflict("this booking can no longer be rescheduled")
	}

	s.log.Info("Booking rescheduled",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("guests", guests),
		zap.Float64("total_price", totalPrice),
	)

	booking.BookingDate = bookingDate
	booking.Guests = guests
	booking.TotalPrice = totalPrice

	s.notifyUser(ctx, booking.HostID, entity.NotificationTypeBooking,
		"Booking rescheduled",
		fmt.Sprintf("%s moved their booking to %s for %d guest(s).", booking.TravelerName, bookingDate.Format("2006-01-02"), guests),
	)

	resp := response.BookingToResponse(booking, reel.Title)
	return &resp, nil
}

func (s *bookingService) SoftDeleteBooking(ctx context.Context, principal entity.Principal, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.TravelerID != principal.ID {
		return apperr.Forbidden("access denied")
	}

	if err := s.repo.Booking.MarkDeletedByTraveler(ctx, booking.ID); err != nil {
		return storageErr("could not delete booking", err)
	}

	return nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Invalid("invalid booking id")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("could not load booking", err)
	}
	if booking == nil {
		return nil, apperr.NotFound("booking not found")
	}

	return booking, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, response.BookingToResponse(booking, s.reelTitle(ctx, booking.ReelID)))
	}
	return responses
}

// reelTitle is display garnish; listings still render when the reel is gone.
func (s *bookingService) reelTitle(ctx context.Context, reelID uuid.UUID) string {
	reel, err := s.repo.Reel.FindByID(ctx, reelID)
	if err != nil || reel == nil {
		return ""
	}
	return reel.Title
}

func (s *bookingService) notifyUser(ctx context.Context, userID uuid.UUID, notifType entity.NotificationType, title, message string) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.log.Error("Failed to load notification recipient",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return
	}
	dispatch(ctx, s.repo, s.notifier, s.log, user, notifType, title, message)
}
