package usecase

import (
	"context"
	"testing"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/data/repository"
	"travel-reels/internal/dto/request"
	"travel-reels/pkg/apperr"
	"travel-reels/pkg/utils"
)

type testAuthDeps struct {
	repo *repository.Repository
}

func newAuthService(t *testing.T) (AuthService, *testAuthDeps) {
	t.Helper()
	repo := newTestRepository()
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repo, config, testLogger()), &testAuthDeps{repo: repo}
}

func TestRegisterAndLogin(t *testing.T) {
	service, deps := newAuthService(t)
	ctx := context.Background()

	resp, err := service.Register(ctx, &request.RegisterRequest{
		Username: "ayu",
		Email:    "ayu@example.com",
		Password: "correct-horse",
		Role:     "host",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.Role != "host" {
		t.Fatalf("role not applied: %+v", resp.User)
	}
	if resp.User.VerificationStatus != string(entity.VerificationUnverified) {
		t.Fatalf("new host starts unverified, got %s", resp.User.VerificationStatus)
	}
	if resp.User.EmailVerified {
		t.Fatal("email starts unconfirmed")
	}
	if resp.Token != "" {
		t.Fatal("registration does not log in")
	}

	login, err := service.Login(ctx, &request.LoginRequest{Username: "ayu", Password: "correct-horse"}, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.Token == "" || login.ExpiresAt == nil {
		t.Fatal("login must issue a session token")
	}

	session, err := deps.repo.Session.FindValidSession(ctx, login.Token)
	if err != nil || session == nil {
		t.Fatalf("issued token must resolve: %v", err)
	}

	if err := service.Logout(ctx, login.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	session, _ = deps.repo.Session.FindValidSession(ctx, login.Token)
	if session != nil {
		t.Fatal("revoked token must not resolve")
	}
}

func TestRegisterDuplicates(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	base := &request.RegisterRequest{Username: "ayu", Email: "ayu@example.com", Password: "correct-horse", Role: "traveler"}
	if _, err := service.Register(ctx, base); err != nil {
		t.Fatalf("register: %v", err)
	}

	dupEmail := *base
	dupEmail.Username = "other"
	if _, err := service.Register(ctx, &dupEmail); !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("duplicate email must conflict, got %v", err)
	}

	dupName := *base
	dupName.Email = "other@example.com"
	if _, err := service.Register(ctx, &dupName); !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("duplicate username must conflict, got %v", err)
	}
}

func TestLoginRejections(t *testing.T) {
	service, deps := newAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, &request.RegisterRequest{
		Username: "ayu", Email: "ayu@example.com", Password: "correct-horse", Role: "traveler",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Bad password and unknown username share one message.
	_, errPass := service.Login(ctx, &request.LoginRequest{Username: "ayu", Password: "wrong"}, "", "")
	_, errUser := service.Login(ctx, &request.LoginRequest{Username: "nobody", Password: "wrong"}, "", "")
	if !apperr.IsKind(errPass, apperr.KindInvalid) || !apperr.IsKind(errUser, apperr.KindInvalid) {
		t.Fatalf("credential failures are invalid: %v / %v", errPass, errUser)
	}
	if apperr.MessageOf(errPass) != apperr.MessageOf(errUser) {
		t.Error("credential failures must not reveal which part was wrong")
	}

	// Deactivated account.
	user, _ := deps.repo.User.FindByUsername(ctx, "ayu")
	deps.repo.User.(*memUserRepo).users[user.ID].IsActive = false
	if _, err := service.Login(ctx, &request.LoginRequest{Username: "ayu", Password: "correct-horse"}, "", ""); !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("deactivated account must be forbidden, got %v", err)
	}
}

func TestConfirmEmailGatesOutboundMail(t *testing.T) {
	service, deps := newAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, &request.RegisterRequest{
		Username: "ayu", Email: "ayu@example.com", Password: "correct-horse", Role: "host",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, _ := deps.repo.User.FindByEmail(ctx, "ayu@example.com")
	principal := entity.Principal{ID: user.ID, Role: entity.RoleHost}
	if err := service.ConfirmEmail(ctx, principal); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	profile, err := service.GetProfile(ctx, principal)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if !profile.EmailVerified {
		t.Fatal("email must be confirmed")
	}
}
