package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the one-way credential transform. Hash embeds its own
// salt and cost in the output, so Verify needs no extra state.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. Any failure, including a
	// malformed stored hash, reads as a mismatch; callers translate that to
	// an undifferentiated credentials error.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
