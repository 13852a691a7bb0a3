// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, invocation IDs, key fingerprints,
// HTTP client initialization and clipboard access.
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

// InvocationIDCtxKey is the key used to store the identifier of the current
// command invocation in the context.
var InvocationIDCtxKey = contextKey("invocationID")

// WithInvocationID returns a copy of ctx carrying id.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, InvocationIDCtxKey, id)
}

// GetInvocationIDFromContext retrieves the invocation identifier from the
// context.
//
// Returns the ID and an ok flag:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetInvocationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(InvocationIDCtxKey).(string)
	return id, ok && id != ""
}
