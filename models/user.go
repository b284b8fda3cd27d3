package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the persistence layer.
	ID int64 `json:"id"`

	// Username is the unique user identifier chosen at registration.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never exposed via JSON and never leaves the service layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SessionUser is the subset of account data a session is allowed to carry.
// The password hash is deliberately absent from this type.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
