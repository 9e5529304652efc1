package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account identified by a generated opaque id.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUserID generates a fresh opaque identity for a user record.
func NewUserID() string {
	return uuid.NewString()
}
