package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountRepo keeps accounts in memory, keyed uniquely by email.
type fakeAccountRepo struct {
	byEmail map[string]Account
	nextID  int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]Account{}, nextID: 1}
}

func (r *fakeAccountRepo) Create(ctx context.Context, account Account) (Account, error) {
	if _, ok := r.byEmail[account.Email]; ok {
		return Account{}, ErrAccountExists
	}
	account.ID = r.nextID
	r.nextID++
	r.byEmail[account.Email] = account
	return account, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (Account, error) {
	account, ok := r.byEmail[email]
	if !ok {
		return Account{}, ErrNotFound
	}
	return account, nil
}

// fakeHasher is a transparent stand-in so use-case tests stay fast; bcrypt
// itself is covered in password_test.go.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, hash string) bool    { return hash == "hashed:"+password }

type fakeIssuer struct {
	issued []Account
}

func (f *fakeIssuer) Issue(ctx context.Context, account Account) (string, error) {
	f.issued = append(f.issued, account)
	return fmt.Sprintf("token-for-%d", account.ID), nil
}

func newTestService() (AuthUseCase, *fakeAccountRepo, *fakeIssuer) {
	repo := newFakeAccountRepo()
	issuer := &fakeIssuer{}
	return NewAuthService(repo, fakeHasher{}, issuer), repo, issuer
}

func TestSignUpCreatesAccount(t *testing.T) {
	svc, repo, issuer := newTestService()

	created, err := svc.SignUp(context.Background(), "a@x.com", "pw1", "A", "B")
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "A", created.Firstname)
	assert.Equal(t, "B", created.Lastname)

	stored := repo.byEmail["a@x.com"]
	assert.Equal(t, "hashed:pw1", stored.PasswordHash, "plaintext must never reach storage")
	assert.Empty(t, issuer.issued, "sign-up must not issue a token")
}

func TestSignUpConflictKeepsOriginalAccount(t *testing.T) {
	svc, repo, issuer := newTestService()

	_, err := svc.SignUp(context.Background(), "a@x.com", "pw1", "A", "B")
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), "a@x.com", "pw2", "C", "D")
	assert.ErrorIs(t, err, ErrAccountExists)

	require.Len(t, repo.byEmail, 1)
	assert.Equal(t, "hashed:pw1", repo.byEmail["a@x.com"].PasswordHash)
	assert.Empty(t, issuer.issued)
}

func TestSignUpLostRaceSurfacesAsConflict(t *testing.T) {
	// A concurrent sign-up can pass the pre-check and lose the insert race;
	// the store's uniqueness error must read exactly like the pre-check.
	repo := newFakeAccountRepo()
	repo.byEmail["a@x.com"] = Account{ID: 7, Email: "a@x.com"}
	svc := NewAuthService(&racingRepo{fakeAccountRepo: repo}, fakeHasher{}, &fakeIssuer{})

	_, err := svc.SignUp(context.Background(), "a@x.com", "pw1", "A", "B")
	assert.ErrorIs(t, err, ErrAccountExists)
}

// racingRepo hides the existing row from the pre-check so Create hits the
// uniqueness conflict.
type racingRepo struct {
	*fakeAccountRepo
}

func (r *racingRepo) GetByEmail(ctx context.Context, email string) (Account, error) {
	return Account{}, ErrNotFound
}

func TestSignUpRejectsEmptyCredentials(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SignUp(context.Background(), "", "pw", "A", "B")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignUp(context.Background(), "a@x.com", "", "A", "B")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInIssuesTokenForSubject(t *testing.T) {
	svc, _, issuer := newTestService()

	created, err := svc.SignUp(context.Background(), "a@x.com", "pw1", "A", "B")
	require.NoError(t, err)

	token, err := svc.SignIn(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("token-for-%d", created.ID), token)
	require.Len(t, issuer.issued, 1)
	assert.Equal(t, created.ID, issuer.issued[0].ID)
}

func TestSignInDoesNotLeakWhichCheckFailed(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SignUp(context.Background(), "a@x.com", "pw1", "A", "B")
	require.NoError(t, err)

	_, errUnknown := svc.SignIn(context.Background(), "nobody@x.com", "pw1")
	_, errWrongPw := svc.SignIn(context.Background(), "a@x.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestSignInPropagatesStoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewAuthService(failingRepo{err: boom}, fakeHasher{}, &fakeIssuer{})

	_, err := svc.SignIn(context.Background(), "a@x.com", "pw1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

type failingRepo struct{ err error }

func (r failingRepo) Create(ctx context.Context, account Account) (Account, error) {
	return Account{}, r.err
}

func (r failingRepo) GetByEmail(ctx context.Context, email string) (Account, error) {
	return Account{}, r.err
}

func TestSignInMalformedStoredHashIsInvalidCredentials(t *testing.T) {
	// Policy: a corrupt stored hash reads as a mismatch, not an internal
	// error, so the client still sees the generic credentials failure.
	repo := newFakeAccountRepo()
	repo.byEmail["a@x.com"] = Account{ID: 1, Email: "a@x.com", PasswordHash: "corrupted"}
	svc := NewAuthService(repo, NewBcryptHasher(), &fakeIssuer{})

	_, err := svc.SignIn(context.Background(), "a@x.com", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
