package auth

import (
	"context"
	"fmt"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

var ErrMissingIdentity = fmt.Errorf("no authenticated user in context")

// ContextIdentity resolves the acting user injected by the auth middleware.
// Services receive the actor exclusively through this collaborator, never
// from client-supplied request fields.
type ContextIdentity struct{}

func (ContextIdentity) CurrentUser(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", ErrMissingIdentity
	}
	return userID, nil
}

// WithUser returns a context carrying an acting user id.
// Used by tests and in-process callers that bypass the HTTP surface.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// WithRoles returns a context carrying the authenticated user's roles.
func WithRoles(ctx context.Context, roles []string) context.Context {
	return context.WithValue(ctx, RolesKey, roles)
}
