package auth

import "time"

// User represents a registered account. PasswordHash is a bcrypt hash; the
// plaintext password is never persisted.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
