package auth

import "time"

// Account is a registered email/password identity with profile fields.
// PasswordHash is the opaque bcrypt output; it never leaves this layer.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Firstname    string
	Lastname     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
