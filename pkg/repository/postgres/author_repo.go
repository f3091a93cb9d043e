package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sillar/bookstore/pkg/author"
)

// AuthorRepository implements author.Repository backed by PostgreSQL (pgx).
type AuthorRepository struct {
	pool *pgxpool.Pool
}

func NewAuthorRepository(pool *pgxpool.Pool) *AuthorRepository {
	return &AuthorRepository{pool: pool}
}

func (r *AuthorRepository) Create(ctx context.Context, a author.Author) (author.Author, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO authors (user_id, firstname, lastname, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, a.UserID, a.Firstname, a.Lastname, a.Bio, a.CreatedAt, a.UpdatedAt)
	if err := row.Scan(&a.ID); err != nil {
		return author.Author{}, err
	}
	return a, nil
}

func (r *AuthorRepository) GetByID(ctx context.Context, id int64) (author.Author, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, firstname, lastname, bio, created_at, updated_at
		FROM authors WHERE id = $1
	`, id)
	var a author.Author
	err := row.Scan(&a.ID, &a.UserID, &a.Firstname, &a.Lastname, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return author.Author{}, author.ErrNotFound
		}
		return author.Author{}, err
	}
	return a, nil
}

func (r *AuthorRepository) List(ctx context.Context, limit, offset int) ([]author.Author, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, firstname, lastname, bio, created_at, updated_at
		FROM authors ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.UserID, &a.Firstname, &a.Lastname, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *AuthorRepository) Update(ctx context.Context, a author.Author) (author.Author, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE authors SET firstname = $2, lastname = $3, bio = $4, updated_at = $5
		WHERE id = $1
	`, a.ID, a.Firstname, a.Lastname, a.Bio, a.UpdatedAt)
	if err != nil {
		return author.Author{}, err
	}
	if tag.RowsAffected() == 0 {
		return author.Author{}, author.ErrNotFound
	}
	return a, nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return author.ErrNotFound
	}
	return nil
}
