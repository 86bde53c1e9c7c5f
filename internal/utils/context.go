// Package utils holds small helpers shared by the HTTP layer, the services
// and the CLI: request-scoped context keys, JSON response writing, the resty
// client wrapper, JWT handling and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key under which the authenticated user id is
// stored by the auth middleware.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context. ok is
// false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
