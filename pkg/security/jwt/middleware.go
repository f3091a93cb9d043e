package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Locals keys set by the guard on success.
const (
	localsAccountID = "accountID"
	localsRole      = "role"
)

// NewAuthGuard returns a Fiber middleware that turns a "Bearer <token>"
// Authorization header into a trusted identity, or ends the request with 401
// before the handler body runs. Only the Bearer scheme is accepted: a
// missing header, another scheme or an empty token all reject.
//
// The guard performs no database lookup: a deleted account's tokens stay
// valid until their natural expiry. The internal rejection cause is logged
// at debug level and never included in the response.
func NewAuthGuard(gen *Generator, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			log.Debug().Str("path", c.Path()).Msg("auth guard: missing or malformed bearer credentials")
			return unauthorized(c)
		}

		claims, err := gen.Parse(tokenStr)
		if err != nil {
			log.Debug().Str("path", c.Path()).Msg("auth guard: token rejected")
			return unauthorized(c)
		}
		accountID, err := claims.AccountID()
		if err != nil {
			log.Debug().Str("path", c.Path()).Msg("auth guard: unparsable subject")
			return unauthorized(c)
		}

		c.Locals(localsAccountID, accountID)
		c.Locals(localsRole, claims.Role)
		return c.Next()
	}
}

// AccountID returns the authenticated account id set by the guard.
func AccountID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(localsAccountID).(int64)
	return id, ok
}

// Role returns the authenticated role set by the guard.
func Role(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals(localsRole).(string)
	return role, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
}
