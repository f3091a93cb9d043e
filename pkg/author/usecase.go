package author

import (
	"context"
	"time"
)

// UseCase encapsulates author catalog operations.
type UseCase interface {
	Create(ctx context.Context, a Author) (Author, error)
	GetByID(ctx context.Context, id int64) (Author, error)
	List(ctx context.Context, limit, offset int) ([]Author, error)
	Update(ctx context.Context, id int64, firstname, lastname, bio string) (Author, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, a Author) (Author, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Create(ctx, a)
}

func (s *service) GetByID(ctx context.Context, id int64) (Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Author, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, id int64, firstname, lastname, bio string) (Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Author{}, err
	}
	a.Firstname = firstname
	a.Lastname = lastname
	a.Bio = bio
	a.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, a)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	// Resolve first so a missing row reads as ErrNotFound, not a no-op.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
