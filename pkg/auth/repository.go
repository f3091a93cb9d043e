package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountRepository abstracts persistence concerns from the domain layer.
// Create must report a uniqueness violation on email as ErrAccountExists so
// that a lost insert race surfaces the same way as the pre-check conflict.
type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
}
