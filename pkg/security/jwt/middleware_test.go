package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sillar/bookstore/pkg/auth"
)

func guardedApp(gen *Generator) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthGuard(gen, zerolog.Nop()), func(c *fiber.Ctx) error {
		id, ok := AccountID(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		role, _ := Role(c)
		return c.JSON(fiber.Map{"id": id, "role": role})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGuardAcceptsValidBearerToken(t *testing.T) {
	gen := NewGenerator("secret", "bookstore", time.Hour)
	token, err := gen.Issue(context.Background(), auth.Account{ID: 42})
	require.NoError(t, err)

	resp := doGet(t, guardedApp(gen), "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardRejections(t *testing.T) {
	gen := NewGenerator("secret", "bookstore", time.Hour)
	staleGen := NewGenerator("stale-secret", "bookstore", time.Hour)
	expiredGen := NewGenerator("secret", "bookstore", -time.Minute)

	valid, err := gen.Issue(context.Background(), auth.Account{ID: 42})
	require.NoError(t, err)
	stale, err := staleGen.Issue(context.Background(), auth.Account{ID: 42})
	require.NoError(t, err)
	expired, err := expiredGen.Issue(context.Background(), auth.Account{ID: 42})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + valid},
		{"no scheme", valid},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer garbage"},
		{"stale secret", "Bearer " + stale},
		{"expired token", "Bearer " + expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doGet(t, guardedApp(gen), tt.header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
