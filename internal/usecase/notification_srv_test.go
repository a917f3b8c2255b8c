package usecase

import (
	"context"
	"testing"

	"travel-reels/internal/data/entity"
)

func TestNotificationsScopedToOwner(t *testing.T) {
	f := newBookingFixture(t)
	service := NewNotificationService(f.repo, testLogger())
	ctx := context.Background()

	f.createBooking(t, 1) // notifies both parties

	hostList, err := service.ListNotifications(ctx, f.hostPrincipal())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hostList) != 1 {
		t.Fatalf("host has 1 notification, got %d", len(hostList))
	}
	if hostList[0].IsRead {
		t.Error("new notification starts unread")
	}

	travelerList, err := service.ListNotifications(ctx, f.travelerPrincipal())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(travelerList) != 1 {
		t.Fatalf("traveler sees only their own row, got %d", len(travelerList))
	}

	// The traveler cannot mark the host's notification; the call is a no-op.
	if err := service.MarkRead(ctx, f.travelerPrincipal(), hostList[0].ID); err != nil {
		t.Fatalf("foreign mark read is silent: %v", err)
	}
	hostList, _ = service.ListNotifications(ctx, f.hostPrincipal())
	if hostList[0].IsRead {
		t.Error("foreign caller must not flip the read flag")
	}

	if err := service.MarkRead(ctx, f.hostPrincipal(), hostList[0].ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	// Idempotent.
	if err := service.MarkRead(ctx, f.hostPrincipal(), hostList[0].ID); err != nil {
		t.Fatalf("repeat mark read: %v", err)
	}
	hostList, _ = service.ListNotifications(ctx, f.hostPrincipal())
	if !hostList[0].IsRead {
		t.Error("notification should be read")
	}
}

func TestListNotificationsCapped(t *testing.T) {
	f := newBookingFixture(t)
	service := NewNotificationService(f.repo, testLogger())
	ctx := context.Background()

	for i := 0; i < notificationPageSize+5; i++ {
		f.notifyViaBookingService(t)
	}

	list, err := service.ListNotifications(ctx, f.hostPrincipal())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != notificationPageSize {
		t.Fatalf("listing capped at %d, got %d", notificationPageSize, len(list))
	}
}

// notifyViaBookingService generates one host notification through the shared
// dispatch path.
func (f *bookingFixture) notifyViaBookingService(t *testing.T) {
	t.Helper()
	dispatch(context.Background(), f.repo, f.notifier, testLogger(), f.host, entity.NotificationTypeSystem, "Ping", "Ping")
}
