package author

import (
	"context"
	"errors"
	"time"
)

// Author is a catalog author. UserID records the account that created the
// entry; it is informational, authors are visible to every signed-in user.
type Author struct {
	ID        int64
	UserID    int64
	Firstname string
	Lastname  string
	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var ErrNotFound = errors.New("author not found")

// Repository is the persistence port for authors.
type Repository interface {
	Create(ctx context.Context, a Author) (Author, error)
	GetByID(ctx context.Context, id int64) (Author, error)
	// List returns authors ordered by most recently updated first.
	List(ctx context.Context, limit, offset int) ([]Author, error)
	Update(ctx context.Context, a Author) (Author, error)
	Delete(ctx context.Context, id int64) error
}
