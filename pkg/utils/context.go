package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	PrincipalIDKey   contextKey = "principal_id"
	PrincipalRoleKey contextKey = "principal_role"
	TokenKey         contextKey = "token"
)

// SetPrincipalContext stores the authenticated actor's id and role. The
// principal is immutable for the lifetime of the request; acting on another
// host's resources is carried as an explicit host id parameter, never by
// rewriting these values.
func SetPrincipalContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, PrincipalIDKey, userID.String())
	ctx = context.WithValue(ctx, PrincipalRoleKey, role)
	return ctx
}

func GetPrincipalIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	idVal := ctx.Value(PrincipalIDKey)
	if idVal == nil {
		return uuid.Nil, false
	}

	idStr, ok := idVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetPrincipalRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(PrincipalRoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}
