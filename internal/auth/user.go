package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is an account that owns payment notes.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login responses never reveal which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated is returned when a session token is missing,
	// malformed, or expired.
	ErrUnauthenticated = errors.New("not authenticated")
)
