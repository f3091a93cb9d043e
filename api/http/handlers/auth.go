package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sillar/bookstore/api/http/presenter"
	"github.com/sillar/bookstore/pkg/auth"
	"github.com/sillar/bookstore/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// SignUp handles account registration. No token is issued here; the client
// signs in afterwards.
// @Summary Register an account
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signUpRequest true "registration payload"
// @Success 201 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	_, err := h.useCase.SignUp(c.Context(), req.Email, req.Password, req.Firstname, req.Lastname)
	if err != nil {
		if errors.Is(err, auth.ErrAccountExists) {
			return presenter.Error(c, http.StatusConflict, "An account exists with that email address.")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create account")
	}

	return presenter.Message(c, http.StatusCreated, "Account created!")
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
}

// SignIn verifies credentials and returns a session token. Unknown email and
// wrong password produce the same response.
// @Summary Sign in
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signInRequest true "credentials"
// @Success 200 {object} signInResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	token, err := h.useCase.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to sign in")
	}

	return presenter.JSON(c, http.StatusOK, signInResponse{Token: token})
}

// Me echoes the identity the guard extracted from the token. It reads only
// the claims; the account row is not re-resolved.
// @Summary Current identity
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	accountID, ok := jwt.AccountID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Invalid credentials")
	}
	role, _ := jwt.Role(c)
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":   accountID,
		"role": role,
	})
}
