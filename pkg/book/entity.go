package book

import (
	"context"
	"errors"
	"time"
)

// Book is a catalog entry tied to an author. Cover holds a URL, Year is kept
// as free text (the catalog stores it verbatim).
type Book struct {
	ID        int64
	UserID    int64
	AuthorID  int64
	Title     string
	Year      string
	Cover     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var ErrNotFound = errors.New("book not found")

// Repository is the persistence port for books.
type Repository interface {
	Create(ctx context.Context, b Book) (Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	// List returns books ordered by most recently updated first.
	List(ctx context.Context, limit, offset int) ([]Book, error)
	// ListByAuthor returns every book of one author.
	ListByAuthor(ctx context.Context, authorID int64) ([]Book, error)
	Update(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, id int64) error
}
