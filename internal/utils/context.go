// Package utils provides general-purpose helper utilities used across
// different parts of the application. Includes tools for working with
// context, type-safe keys and HTTP response writing.
package utils

import (
	"context"

	"github.com/periodicapp/periodic/internal/session"
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

// SessionCtxKey is the key used to store the current session record in the
// context. The session middleware writes it; handlers retrieve it with
// GetSessionFromContext.
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the session record from the context.
//
// Returns the record and an ok flag:
//   - ok == true  — the session middleware ran and stored a record
//   - ok == false — value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (session.Record, bool) {
	rec, ok := ctx.Value(SessionCtxKey).(session.Record)
	return rec, ok
}
