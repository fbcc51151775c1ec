package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// UserIDKey is the request-context key carrying the authenticated user id
const UserIDKey contextKey = "user_id"

// EmailKey is the request-context key carrying the authenticated email
const EmailKey contextKey = "email"

// GetUserIDFromContext extracts the authenticated user id placed in the
// request context by the auth middleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}
