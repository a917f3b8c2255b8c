package usecase

import (
	"context"
	"testing"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/dto/request"
	"travel-reels/pkg/apperr"
)

func newReviewService(f *bookingFixture) ReviewService {
	return NewReviewService(f.repo, NewAccessService(f.repo, testLogger()), testLogger())
}

func completedBooking(t *testing.T, f *bookingFixture) *entity.Booking {
	t.Helper()
	booking := f.createBooking(t, 1)
	f.repo.Booking.(*memBookingRepo).bookings[booking.ID].Status = entity.BookingStatusCompleted
	booking.Status = entity.BookingStatusCompleted
	return booking
}

func TestCreateReviewOnlyCompletedBooking(t *testing.T) {
	f := newBookingFixture(t)
	service := newReviewService(f)
	ctx := context.Background()

	booking := f.createBooking(t, 1)
	comment := "Stunning views"
	req := &request.CreateReviewRequest{BookingID: booking.ID.String(), Rating: 5, Comment: &comment}

	if _, err := service.CreateReview(ctx, f.travelerPrincipal(), req); !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("pending booking cannot be reviewed, got %v", err)
	}

	f.repo.Booking.(*memBookingRepo).bookings[booking.ID].Status = entity.BookingStatusCompleted

	resp, err := service.CreateReview(ctx, f.travelerPrincipal(), req)
	if err != nil {
		t.Fatalf("review completed booking: %v", err)
	}
	if resp.Rating != 5 || resp.ReelID != f.reel.ID.String() {
		t.Fatalf("unexpected review: %+v", resp)
	}

	// One review per booking.
	if _, err := service.CreateReview(ctx, f.travelerPrincipal(), req); !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("second review must conflict, got %v", err)
	}
}

func TestCreateReviewForeignBookingReadsNotFound(t *testing.T) {
	f := newBookingFixture(t)
	service := newReviewService(f)
	ctx := context.Background()

	booking := completedBooking(t, f)
	other := seedUser(t, f.repo, entity.RoleTraveler, true)

	_, err := service.CreateReview(ctx, entity.Principal{ID: other.ID, Role: entity.RoleTraveler}, &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    4,
	})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("foreign booking must read as not found, got %v", err)
	}
}

func TestReplyReviewCapability(t *testing.T) {
	f := newBookingFixture(t)
	service := newReviewService(f)
	ctx := context.Background()

	booking := completedBooking(t, f)
	created, err := service.CreateReview(ctx, f.travelerPrincipal(), &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    4,
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	reply := &request.ReplyReviewRequest{Reply: "Thank you for joining us!"}

	viewer := seedUser(t, f.repo, entity.RoleTraveler, true)
	grantRole(t, f.repo, f.host.ID, viewer.ID, entity.TeamRoleViewer)
	if _, err := service.ReplyReview(ctx, entity.Principal{ID: viewer.ID, Role: entity.RoleTraveler}, created.ID, reply); !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("viewer may not reply, got %v", err)
	}

	resp, err := service.ReplyReview(ctx, f.hostPrincipal(), created.ID, reply)
	if err != nil {
		t.Fatalf("host reply: %v", err)
	}
	if resp.HostReply == nil || *resp.HostReply != reply.Reply {
		t.Fatalf("reply not applied: %+v", resp)
	}
}

func TestListByReelIsPublic(t *testing.T) {
	f := newBookingFixture(t)
	service := newReviewService(f)
	ctx := context.Background()

	booking := completedBooking(t, f)
	if _, err := service.CreateReview(ctx, f.travelerPrincipal(), &request.CreateReviewRequest{
		BookingID: booking.ID.String(),
		Rating:    3,
	}); err != nil {
		t.Fatalf("create review: %v", err)
	}

	reviews, err := service.ListByReel(ctx, f.reel.ID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("want 1 review, got %d", len(reviews))
	}
}
