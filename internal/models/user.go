package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Primary key
	Fullname     string    `json:"fullname" db:"fullname"`           // Full name, e.g. "John Doe"
	Username     string    `json:"username" db:"username"`           // Unique username
	Email        string    `json:"email" db:"email"`                 // User email
	PasswordHash string    `json:"-" db:"password_hash"`             // Hashed password
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// Submitter is the identity snapshot embedded into every transaction at
// creation time. It is copied from the authenticated user and never
// re-derived, so later profile edits do not rewrite history.
type Submitter struct {
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	Fullname string    `json:"fullname" db:"fullname"`
	Username string    `json:"username" db:"username"`
	Email    string    `json:"email" db:"email"`
}
