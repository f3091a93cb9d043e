package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sillar/bookstore/pkg/auth"
)

const pgUniqueViolation = "23505"

// AccountRepository implements auth.AccountRepository backed by PostgreSQL (pgx).
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, account auth.Account) (auth.Account, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, firstname, lastname, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, account.Email, account.PasswordHash, account.Firstname, account.Lastname, account.CreatedAt, account.UpdatedAt)
	if err := row.Scan(&account.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Lost insert race: report it exactly like the pre-check conflict.
			return auth.Account{}, auth.ErrAccountExists
		}
		return auth.Account{}, err
	}
	return account, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (auth.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, firstname, lastname, created_at, updated_at
		FROM users WHERE email = $1
	`, email)
	var account auth.Account
	err := row.Scan(&account.ID, &account.Email, &account.PasswordHash,
		&account.Firstname, &account.Lastname, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Account{}, auth.ErrNotFound
		}
		return auth.Account{}, err
	}
	return account, nil
}
