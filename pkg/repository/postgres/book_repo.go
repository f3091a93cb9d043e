package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sillar/bookstore/pkg/author"
	"github.com/sillar/bookstore/pkg/book"
)

const pgForeignKeyViolation = "23503"

// BookRepository implements book.Repository backed by PostgreSQL (pgx).
type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) Create(ctx context.Context, b book.Book) (book.Book, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO books (user_id, author_id, title, year, cover, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, b.UserID, b.AuthorID, b.Title, b.Year, b.Cover, b.CreatedAt, b.UpdatedAt)
	if err := row.Scan(&b.ID); err != nil {
		return book.Book{}, mapAuthorFK(err)
	}
	return b, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (book.Book, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, author_id, title, year, cover, created_at, updated_at
		FROM books WHERE id = $1
	`, id)
	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.Book{}, book.ErrNotFound
		}
		return book.Book{}, err
	}
	return b, nil
}

func (r *BookRepository) List(ctx context.Context, limit, offset int) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, author_id, title, year, cover, created_at, updated_at
		FROM books ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows)
}

func (r *BookRepository) ListByAuthor(ctx context.Context, authorID int64) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, author_id, title, year, cover, created_at, updated_at
		FROM books WHERE author_id = $1 ORDER BY updated_at DESC
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows)
}

func (r *BookRepository) Update(ctx context.Context, b book.Book) (book.Book, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE books SET author_id = $2, title = $3, year = $4, cover = $5, updated_at = $6
		WHERE id = $1
	`, b.ID, b.AuthorID, b.Title, b.Year, b.Cover, b.UpdatedAt)
	if err != nil {
		return book.Book{}, mapAuthorFK(err)
	}
	if tag.RowsAffected() == 0 {
		return book.Book{}, book.ErrNotFound
	}
	return b, nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return book.ErrNotFound
	}
	return nil
}

// mapAuthorFK translates a books.author_id foreign key violation into the
// author-not-found sentinel so handlers can answer 404 instead of 500.
func mapAuthorFK(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation && pgErr.ConstraintName == "books_author_id_fkey" {
		return author.ErrNotFound
	}
	return err
}

func scanBook(row pgx.Row) (book.Book, error) {
	var b book.Book
	err := row.Scan(&b.ID, &b.UserID, &b.AuthorID, &b.Title, &b.Year, &b.Cover, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func collectBooks(rows pgx.Rows) ([]book.Book, error) {
	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
