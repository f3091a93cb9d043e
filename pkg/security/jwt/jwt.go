package jwt

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sillar/bookstore/pkg/auth"
)

// RoleUser is the only role this service mints; there is no escalation logic.
const RoleUser = "user"

// ErrInvalidToken is the single rejection Parse returns to callers. The
// distinct internal cause (bad signature, malformed token, expiry) is never
// propagated past this package.
var ErrInvalidToken = errors.New("invalid token")

// Claims includes the standard registered claims plus the subject's role.
// Subject is the decimal account id.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// AccountID parses the subject back into an account id.
func (c *Claims) AccountID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// Generator mints and verifies HS256 tokens with a fixed lifetime. The
// secret is injected at construction; verification is a pure function of
// (token, secret, current time).
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue implements auth.TokenIssuer.
func (g *Generator) Issue(ctx context.Context, account auth.Account) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   strconv.FormatInt(account.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Role: RoleUser,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Parse checks signature, structure and expiry, in that order. All failures
// collapse into ErrInvalidToken; the underlying error is returned second for
// operator logging only.
func (g *Generator) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if g.issuer != "" && claims.Issuer != g.issuer {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
