package usecase

import (
	"context"
	"testing"
	"time"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/data/repository"
	"travel-reels/pkg/apperr"

	"github.com/google/uuid"
)

func grantRole(t *testing.T, repo *repository.Repository, hostID, memberID uuid.UUID, role entity.TeamRole) *entity.TeamMember {
	t.Helper()
	member := &entity.TeamMember{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		HostID:     hostID,
		MemberID:   memberID,
		Role:       role,
	}
	if err := repo.Team.Create(context.Background(), member); err != nil {
		t.Fatalf("create team member: %v", err)
	}
	return member
}

func TestCanActOwnerAndAdmin(t *testing.T) {
	repo := newTestRepository()
	access := NewAccessService(repo, testLogger())
	ctx := context.Background()

	hostID := uuid.New()

	owner := entity.Principal{ID: hostID, Role: entity.RoleHost}
	allowed, err := access.CanAct(ctx, owner, hostID, entity.CapabilityDelete)
	if err != nil || !allowed {
		t.Fatalf("owner should hold every capability, got allowed=%v err=%v", allowed, err)
	}

	admin := entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	allowed, err = access.CanAct(ctx, admin, hostID, entity.CapabilityDelete)
	if err != nil || !allowed {
		t.Fatalf("platform admin should hold every capability, got allowed=%v err=%v", allowed, err)
	}

	stranger := entity.Principal{ID: uuid.New(), Role: entity.RoleTraveler}
	allowed, err = access.CanAct(ctx, stranger, hostID, entity.CapabilityRead)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatal("a principal with no delegation must be denied")
	}
}

func TestCanActCapabilityMatrix(t *testing.T) {
	cases := []struct {
		role       entity.TeamRole
		capability entity.Capability
		want       bool
	}{
		{entity.TeamRoleViewer, entity.CapabilityRead, true},
		{entity.TeamRoleViewer, entity.CapabilityManageBookings, false},
		{entity.TeamRoleViewer, entity.CapabilityManageReels, false},
		{entity.TeamRoleViewer, entity.CapabilityReplyReviews, false},
		{entity.TeamRoleViewer, entity.CapabilityDelete, false},
		{entity.TeamRoleEditor, entity.CapabilityRead, true},
		{entity.TeamRoleEditor, entity.CapabilityManageBookings, true},
		{entity.TeamRoleEditor, entity.CapabilityManageReels, true},
		{entity.TeamRoleEditor, entity.CapabilityReplyReviews, true},
		{entity.TeamRoleEditor, entity.CapabilityDelete, false},
		{entity.TeamRoleAdmin, entity.CapabilityRead, true},
		{entity.TeamRoleAdmin, entity.CapabilityManageBookings, true},
		{entity.TeamRoleAdmin, entity.CapabilityManageReels, true},
		{entity.TeamRoleAdmin, entity.CapabilityReplyReviews, true},
		{entity.TeamRoleAdmin, entity.CapabilityDelete, true},
	}

	for _, tc := range cases {
		repo := newTestRepository()
		access := NewAccessService(repo, testLogger())
		ctx := context.Background()

		hostID := uuid.New()
		memberID := uuid.New()
		grantRole(t, repo, hostID, memberID, tc.role)

		member := entity.Principal{ID: memberID, Role: entity.RoleTraveler}
		allowed, err := access.CanAct(ctx, member, hostID, tc.capability)
		if err != nil {
			t.Fatalf("%s/%s: unexpected error: %v", tc.role, tc.capability, err)
		}
		if allowed != tc.want {
			t.Errorf("%s/%s: got %v, want %v", tc.role, tc.capability, allowed, tc.want)
		}
	}
}

func TestRevocationBitesImmediately(t *testing.T) {
	repo := newTestRepository()
	access := NewAccessService(repo, testLogger())
	ctx := context.Background()

	hostID := uuid.New()
	memberID := uuid.New()
	grant := grantRole(t, repo, hostID, memberID, entity.TeamRoleEditor)

	member := entity.Principal{ID: memberID, Role: entity.RoleTraveler}
	if err := access.Authorize(ctx, member, hostID, entity.CapabilityManageBookings); err != nil {
		t.Fatalf("editor should manage bookings: %v", err)
	}

	if err := repo.Team.Delete(ctx, grant.ID, hostID); err != nil {
		t.Fatalf("revoke grant: %v", err)
	}

	err := access.Authorize(ctx, member, hostID, entity.CapabilityManageBookings)
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("revoked member must be forbidden on the next check, got %v", err)
	}
}

func TestAuthorizeDeniesWithoutLeaking(t *testing.T) {
	repo := newTestRepository()
	access := NewAccessService(repo, testLogger())
	ctx := context.Background()

	member := entity.Principal{ID: uuid.New(), Role: entity.RoleTraveler}
	err := access.Authorize(ctx, member, uuid.New(), entity.CapabilityDelete)
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if apperr.MessageOf(err) != "access denied" {
		t.Fatalf("denial message must not say why: %q", apperr.MessageOf(err))
	}
}
