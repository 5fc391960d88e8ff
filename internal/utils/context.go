// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writing, the shared HTTP
// client, trace ids and JWT generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// identity (username) resolved from the bearer token.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the identity stored by [WithIdentity].
// ok is false when the value is missing, empty or of an unexpected type.
func GetIdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(string)
	return identity, ok && identity != ""
}

// UserIDCtxKey is the key under which the auth middleware stores the
// numeric id of the resolved account.
var UserIDCtxKey = contextKey("user_id")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the id stored by [WithUserID].
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok && userID > 0
}
