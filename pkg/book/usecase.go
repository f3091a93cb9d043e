package book

import (
	"context"
	"time"
)

// UseCase encapsulates book catalog operations.
type UseCase interface {
	Create(ctx context.Context, b Book) (Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	List(ctx context.Context, limit, offset int) ([]Book, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]Book, error)
	Update(ctx context.Context, id int64, authorID int64, title, year, cover string) (Book, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, b Book) (Book, error) {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.repo.Create(ctx, b)
}

func (s *service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Book, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) ListByAuthor(ctx context.Context, authorID int64) ([]Book, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *service) Update(ctx context.Context, id int64, authorID int64, title, year, cover string) (Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}
	b.AuthorID = authorID
	b.Title = title
	b.Year = year
	b.Cover = cover
	b.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, b)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
