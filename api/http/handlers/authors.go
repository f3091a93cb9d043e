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

const msgAuthorNotFound = "No author found with the specified ID."

type AuthorHandler struct {
	authors author.UseCase
	books   book.UseCase
}

func NewAuthorHandler(authors author.UseCase, books book.UseCase) *AuthorHandler {
	return &AuthorHandler{authors: authors, books: books}
}

type authorRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio"`
}

type authorResponse struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio"`
}

type authorListResponse struct {
	Total   int              `json:"total"`
	Authors []authorResponse `json:"authors"`
}

func toAuthorResponse(a author.Author) authorResponse {
	return authorResponse{ID: a.ID, Firstname: a.Firstname, Lastname: a.Lastname, Bio: a.Bio}
}

// List returns authors, most recently updated first.
// @Summary List authors
// @Tags    authors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} authorListResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /authors [get]
func (h *AuthorHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	authors, err := h.authors.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list authors")
	}
	out := make([]authorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthorResponse(a))
	}
	return presenter.JSON(c, http.StatusOK, authorListResponse{Total: len(out), Authors: out})
}

// Create adds an author, recording the creating account.
// @Summary Create author
// @Tags    authors
// @Accept  json
// @Produce json
// @Param   input body authorRequest true "author payload"
// @Security BearerAuth
// @Success 201 {object} authorResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /authors [post]
func (h *AuthorHandler) Create(c *fiber.Ctx) error {
	accountID, ok := jwt.AccountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Invalid credentials")
	}
	var req authorRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Firstname) == "" || strings.TrimSpace(req.Lastname) == "" {
		return presenter.Error(c, http.StatusBadRequest, "firstname and lastname are required")
	}

	a, err := h.authors.Create(c.Context(), author.Author{
		UserID:    accountID,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Bio:       req.Bio,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create author")
	}
	return presenter.JSON(c, http.StatusCreated, toAuthorResponse(a))
}

// Show returns one author by id.
// @Summary Get author
// @Tags    authors
// @Produce json
// @Param   id path int true "author id"
// @Security BearerAuth
// @Success 200 {object} authorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /authors/{id} [get]
func (h *AuthorHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid author ID")
	}
	a, err := h.authors.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, msgAuthorNotFound)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch author")
	}
	return presenter.JSON(c, http.StatusOK, toAuthorResponse(a))
}

// Update replaces the author's profile fields.
// @Summary Update author
// @Tags    authors
// @Accept  json
// @Produce json
// @Param   id path int true "author id"
// @Param   input body authorRequest true "author payload"
// @Security BearerAuth
// @Success 200 {object} authorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /authors/{id} [put]
func (h *AuthorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid author ID")
	}
	var req authorRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	a, err := h.authors.Update(c.Context(), id, req.Firstname, req.Lastname, req.Bio)
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, msgAuthorNotFound)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update author")
	}
	return presenter.JSON(c, http.StatusOK, toAuthorResponse(a))
}

// Delete removes an author.
// @Summary Delete author
// @Tags    authors
// @Produce json
// @Param   id path int true "author id"
// @Security BearerAuth
// @Success 200 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /authors/{id} [delete]
func (h *AuthorHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid author ID")
	}
	if err := h.authors.Delete(c.Context(), id); err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, msgAuthorNotFound)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete author")
	}
	return presenter.Message(c, http.StatusOK, "Author deleted.")
}

// Books returns every book of one author.
// @Summary List an author's books
// @Tags    authors
// @Produce json
// @Param   id path int true "author id"
// @Security BearerAuth
// @Success 200 {object} bookListResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /authors/{id}/books [get]
func (h *AuthorHandler) Books(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid author ID")
	}
	if _, err := h.authors.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, msgAuthorNotFound)
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch author")
	}
	books, err := h.books.ListByAuthor(c.Context(), id)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list books")
	}
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return presenter.JSON(c, http.StatusOK, bookListResponse{Total: len(out), Books: out})
}
