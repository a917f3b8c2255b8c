package usecase

import (
	"context"
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

// AuthService resolves who is calling. The rest of the engine only ever sees
// the Principal it produces.
type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error

	// ConfirmEmail marks the caller's address as contactable. Token issuance
	// and link delivery live with the mail relay; by the time this runs the
	// link has already been validated.
	ConfirmEmail(ctx context.Context, principal entity.Principal) error

	GetProfile(ctx context.Context, principal entity.Principal) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, storageErr("could not check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("an account with that email already exists")
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, storageErr("could not check username", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("that username is taken")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Upstream("could not hash password", err)
	}

	var hostType *entity.HostType
	if entity.UserRole(req.Role) == entity.RoleHost {
		ht := entity.HostTypeIndividual
		if req.HostType != nil {
			ht = entity.HostType(*req.HostType)
		}
		hostType = &ht
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:           req.Username,
		Email:              req.Email,
		PasswordHash:       hash,
		Phone:              req.Phone,
		Role:               entity.UserRole(req.Role),
		HostType:           hostType,
		VerificationStatus: entity.VerificationUnverified,
		IsActive:           true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, storageErr("could not create account", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role),
	)

	return &response.AuthResponse{User: response.UserToResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Invalid(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, storageErr("could not load account", err)
	}

	// One message for bad username and bad password.
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperr.Invalid("invalid username or password")
	}

	if !user.IsActive {
		return nil, apperr.Forbidden("this account is deactivated")
	}

	expiresAt := time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour)
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: expiresAt,
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, storageErr("could not create session", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		Token:     session.Token.String(),
		ExpiresAt: &expiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return storageErr("could not revoke session", err)
	}
	return nil
}

func (s *authService) ConfirmEmail(ctx context.Context, principal entity.Principal) error {
	if err := s.repo.User.SetEmailVerified(ctx, principal.ID); err != nil {
		return storageErr("could not confirm email", err)
	}

	s.log.Info("Email confirmed", zap.String("user_id", principal.ID.String()))
	return nil
}

func (s *authService) GetProfile(ctx context.Context, principal entity.Principal) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, storageErr("could not load account", err)
	}
	if user == nil {
		return nil, apperr.NotFound("account not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
