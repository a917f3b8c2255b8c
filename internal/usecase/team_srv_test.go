package usecase

import (
	"context"
	"testing"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/dto/request"
	"travel-reels/pkg/apperr"

	"github.com/google/uuid"
)

func TestAddMember(t *testing.T) {
	repo := newTestRepository()
	service := NewTeamService(repo, testLogger())
	ctx := context.Background()

	host := seedUser(t, repo, entity.RoleHost, true)
	member := seedUser(t, repo, entity.RoleTraveler, true)
	principal := entity.Principal{ID: host.ID, Role: entity.RoleHost}

	resp, err := service.AddMember(ctx, principal, &request.AddTeamMemberRequest{
		Email: member.Email,
		Role:  "editor",
	})
	if err != nil {
		t.Fatalf("add member: %v", err)
	}
	if resp.Role != "editor" || resp.Member.ID != member.ID.String() {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// Duplicate grant.
	if _, err := service.AddMember(ctx, principal, &request.AddTeamMemberRequest{Email: member.Email, Role: "viewer"}); !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("duplicate grant must conflict, got %v", err)
	}
}

func TestAddMemberEdgeCases(t *testing.T) {
	repo := newTestRepository()
	service := NewTeamService(repo, testLogger())
	ctx := context.Background()

	host := seedUser(t, repo, entity.RoleHost, true)
	principal := entity.Principal{ID: host.ID, Role: entity.RoleHost}

	if _, err := service.AddMember(ctx, principal, &request.AddTeamMemberRequest{Email: "nobody@example.com", Role: "viewer"}); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("unknown email must be not found, got %v", err)
	}

	if _, err := service.AddMember(ctx, principal, &request.AddTeamMemberRequest{Email: host.Email, Role: "viewer"}); !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("self-grant must conflict, got %v", err)
	}

	member := seedUser(t, repo, entity.RoleTraveler, true)
	if _, err := service.AddMember(ctx, principal, &request.AddTeamMemberRequest{Email: member.Email, Role: "owner"}); !apperr.IsKind(err, apperr.KindInvalid) {
		t.Fatalf("unknown role must be invalid, got %v", err)
	}
}

func TestRemoveMemberScopedToOwnTeam(t *testing.T) {
	repo := newTestRepository()
	service := NewTeamService(repo, testLogger())
	ctx := context.Background()

	host := seedUser(t, repo, entity.RoleHost, true)
	member := seedUser(t, repo, entity.RoleTraveler, true)
	grant := grantRole(t, repo, host.ID, member.ID, entity.TeamRoleViewer)

	// Another host cannot revoke a grant they do not own.
	otherHost := seedUser(t, repo, entity.RoleHost, true)
	if err := service.RemoveMember(ctx, entity.Principal{ID: otherHost.ID, Role: entity.RoleHost}, grant.ID.String()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("foreign grant must read as not found, got %v", err)
	}

	if err := service.RemoveMember(ctx, entity.Principal{ID: host.ID, Role: entity.RoleHost}, grant.ID.String()); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Gone.
	if err := service.RemoveMember(ctx, entity.Principal{ID: host.ID, Role: entity.RoleHost}, grant.ID.String()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("second removal must be not found, got %v", err)
	}
}

func TestListTeamAndManaging(t *testing.T) {
	repo := newTestRepository()
	service := NewTeamService(repo, testLogger())
	ctx := context.Background()

	host := seedUser(t, repo, entity.RoleHost, true)
	a := seedUser(t, repo, entity.RoleTraveler, true)
	b := seedUser(t, repo, entity.RoleTraveler, true)
	grantRole(t, repo, host.ID, a.ID, entity.TeamRoleViewer)
	grantRole(t, repo, host.ID, b.ID, entity.TeamRoleEditor)

	team, err := service.ListTeam(ctx, entity.Principal{ID: host.ID, Role: entity.RoleHost})
	if err != nil {
		t.Fatalf("list team: %v", err)
	}
	if len(team) != 2 {
		t.Fatalf("want 2 members, got %d", len(team))
	}

	managing, err := service.ListManaging(ctx, entity.Principal{ID: a.ID, Role: entity.RoleTraveler})
	if err != nil {
		t.Fatalf("list managing: %v", err)
	}
	if len(managing) != 1 || managing[0].Host.ID != host.ID.String() {
		t.Fatalf("member should see the host they manage: %+v", managing)
	}

	stranger := entity.Principal{ID: uuid.New(), Role: entity.RoleTraveler}
	managing, err = service.ListManaging(ctx, stranger)
	if err != nil || len(managing) != 0 {
		t.Fatalf("stranger manages nothing: %v %v", managing, err)
	}
}
