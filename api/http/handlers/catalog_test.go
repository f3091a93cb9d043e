package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sillar/bookstore/pkg/auth"
	"github.com/sillar/bookstore/pkg/author"
	"github.com/sillar/bookstore/pkg/book"
	"github.com/sillar/bookstore/pkg/security/jwt"
)

// In-memory repositories so catalog handler tests run the real use cases.

type memAuthorRepo struct {
	rows   map[int64]author.Author
	nextID int64
}

func newMemAuthorRepo() *memAuthorRepo {
	return &memAuthorRepo{rows: map[int64]author.Author{}, nextID: 1}
}

func (r *memAuthorRepo) Create(ctx context.Context, a author.Author) (author.Author, error) {
	a.ID = r.nextID
	r.nextID++
	r.rows[a.ID] = a
	return a, nil
}

func (r *memAuthorRepo) GetByID(ctx context.Context, id int64) (author.Author, error) {
	a, ok := r.rows[id]
	if !ok {
		return author.Author{}, author.ErrNotFound
	}
	return a, nil
}

func (r *memAuthorRepo) List(ctx context.Context, limit, offset int) ([]author.Author, error) {
	out := make([]author.Author, 0, len(r.rows))
	for _, a := range r.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memAuthorRepo) Update(ctx context.Context, a author.Author) (author.Author, error) {
	if _, ok := r.rows[a.ID]; !ok {
		return author.Author{}, author.ErrNotFound
	}
	r.rows[a.ID] = a
	return a, nil
}

func (r *memAuthorRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return author.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type memBookRepo struct {
	authors *memAuthorRepo
	rows    map[int64]book.Book
	nextID  int64
}

func newMemBookRepo(authors *memAuthorRepo) *memBookRepo {
	return &memBookRepo{authors: authors, rows: map[int64]book.Book{}, nextID: 1}
}

func (r *memBookRepo) checkAuthor(id int64) error {
	if _, ok := r.authors.rows[id]; !ok {
		return author.ErrNotFound
	}
	return nil
}

func (r *memBookRepo) Create(ctx context.Context, b book.Book) (book.Book, error) {
	if err := r.checkAuthor(b.AuthorID); err != nil {
		return book.Book{}, err
	}
	b.ID = r.nextID
	r.nextID++
	r.rows[b.ID] = b
	return b, nil
}

func (r *memBookRepo) GetByID(ctx context.Context, id int64) (book.Book, error) {
	b, ok := r.rows[id]
	if !ok {
		return book.Book{}, book.ErrNotFound
	}
	return b, nil
}

func (r *memBookRepo) List(ctx context.Context, limit, offset int) ([]book.Book, error) {
	out := make([]book.Book, 0, len(r.rows))
	for _, b := range r.rows {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memBookRepo) ListByAuthor(ctx context.Context, authorID int64) ([]book.Book, error) {
	var out []book.Book
	for _, b := range r.rows {
		if b.AuthorID == authorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookRepo) Update(ctx context.Context, b book.Book) (book.Book, error) {
	if _, ok := r.rows[b.ID]; !ok {
		return book.Book{}, book.ErrNotFound
	}
	if err := r.checkAuthor(b.AuthorID); err != nil {
		return book.Book{}, err
	}
	r.rows[b.ID] = b
	return b, nil
}

func (r *memBookRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return book.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// catalogApp wires the real use cases and the real guard over the in-memory
// repos, returning the app and a valid bearer token.
func catalogApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	authorRepo := newMemAuthorRepo()
	bookRepo := newMemBookRepo(authorRepo)
	authorUC := author.NewService(authorRepo)
	bookUC := book.NewService(bookRepo)

	gen := jwt.NewGenerator("secret", "bookstore", time.Hour)
	guard := jwt.NewAuthGuard(gen, zerolog.Nop())

	app := fiber.New()
	authors := NewAuthorHandler(authorUC, bookUC)
	books := NewBookHandler(bookUC)

	ag := app.Group("/authors", guard)
	ag.Get("/", authors.List)
	ag.Post("/", authors.Create)
	ag.Get("/:id", authors.Show)
	ag.Put("/:id", authors.Update)
	ag.Delete("/:id", authors.Delete)
	ag.Get("/:id/books", authors.Books)

	bg := app.Group("/books", guard)
	bg.Get("/", books.List)
	bg.Post("/", books.Create)
	bg.Get("/:id", books.Show)
	bg.Put("/:id", books.Update)
	bg.Delete("/:id", books.Delete)

	token, err := gen.Issue(context.Background(), auth.Account{ID: 1})
	require.NoError(t, err)
	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}
