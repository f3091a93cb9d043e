package auth

import (
	"context"
	"errors"
	"time"
)

// AuthUseCase describes registration and authentication behavior.
type AuthUseCase interface {
	// SignUp creates a new account. No token is issued at sign-up;
	// sign-up and sign-in are decoupled.
	SignUp(ctx context.Context, email, password, firstname, lastname string) (Account, error)
	// SignIn verifies credentials and mints a session token.
	SignIn(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	repo   AccountRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo AccountRepository, hasher PasswordHasher, tokens TokenIssuer) AuthUseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *authService) SignUp(ctx context.Context, email, password, firstname, lastname string) (Account, error) {
	if email == "" || password == "" {
		return Account{}, ErrInvalidCredentials
	}

	// Best-effort pre-check; the unique index on email is the real arbiter
	// when two sign-ups race.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Account{}, ErrAccountExists
	} else if !errors.Is(err, ErrNotFound) {
		return Account{}, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return Account{}, err
	}

	now := time.Now().UTC()
	account := Account{
		Email:        email,
		PasswordHash: passwordHash,
		Firstname:    firstname,
		Lastname:     lastname,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return Account{}, err
	}
	return created, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (string, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// "No such email" and "wrong password" must be indistinguishable.
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(ctx, account)
}
