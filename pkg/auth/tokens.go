package auth

import "context"

// TokenIssuer abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, account Account) (string, error)
}
