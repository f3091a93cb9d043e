package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sillar/bookstore/api/http/presenter"
	"github.com/sillar/bookstore/pkg/author"
	"github.com/sillar/bookstore/pkg/book"
	"github.com/sillar/bookstore/pkg/security/jwt"
)

const msgBookNotFound = "No book found with the specified ID."

type BookHandler struct {
	books book.UseCase
}

func NewBookHandler(books book.UseCase) *BookHandler {
	return &BookHandler{books: books}
}

type bookRequest struct {
	AuthorID int64  `json:"author_id"`
	Title    string `json:"title"`
	Year     string `json:"year"`
	Cover    string `json:"cover"`
}

type bookResponse struct {
	ID       int64  `json:"id"`
	AuthorID int64  `json:"author_id"`
	Title    string `json:"title"`
	Year     string `json:"year"`
	Cover    string `json:"cover"`
}

type bookListResponse struct {
	Total int            `json:"total"`
	Books []bookResponse `json:"books"`
}

func toBookResponse(b book.Book) bookResponse {
	return bookResponse{ID: b.ID, AuthorID: b.AuthorID, Title: b.Title, Year: b.Year, Cover: b.Cover}
}

// List returns books, most recently updated first.
// @Summary List books
// @Tags    books
// @Produce json
// @Security BearerAuth
// @Success 200 {object} bookListResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	books, err := h.books.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list books")
	}
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return presenter.JSON(c, http.StatusOK, bookListResponse{Total: len(out), Books: out})
}

// Create adds a book for an existing author.
// @Summary Create book
// @Tags    books
// @Accept  json
// @Produce json
// @Param   input body bookRequest true "book payload"
// @Security BearerAuth
// @Success 201 {object} bookResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	accountID, ok := jwt.AccountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Invalid credentials")
	}
	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Title) == "" {
		return presenter.Error(c, http.StatusBadRequest, "title is required")
	}

	b, err := h.books.Create(c.Context(), book.Book{
		UserID:   accountID,
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Year:     req.Year,
		Cover:    req.Cover,
	})
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, msgAuthorNotFound)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create book")
	}
	return presenter.JSON(c, http.StatusCreated, toBookResponse(b))
}

// Show returns one book by id.
// @Summary Get book
// @Tags    books
// @Produce json
// @Param   id path int true "book id"
// @Security BearerAuth
// @Success 200 {object} bookResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /books/{id} [get]
func (h *BookHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid book ID")
	}
	b, err := h.books.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, msgBookNotFound)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch book")
	}
	return presenter.JSON(c, http.StatusOK, toBookResponse(b))
}

// Update replaces the book's fields.
// @Summary Update book
// @Tags    books
// @Accept  json
// @Produce json
// @Param   id path int true "book id"
// @Param   input body bookRequest true "book payload"
// @Security BearerAuth
// @Success 200 {object} bookResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid book ID")
	}
	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	b, err := h.books.Update(c.Context(), id, req.AuthorID, req.Title, req.Year, req.Cover)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, msgBookNotFound)
		case errors.Is(err, author.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, msgAuthorNotFound)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update book")
	}
	return presenter.JSON(c, http.StatusOK, toBookResponse(b))
}

// Delete removes a book.
// @Summary Delete book
// @Tags    books
// @Produce json
// @Param   id path int true "book id"
// @Security BearerAuth
// @Success 200 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid book ID")
	}
	if err := h.books.Delete(c.Context(), id); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, msgBookNotFound)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete book")
	}
	return presenter.Message(c, http.StatusOK, "Book deleted.")
}
