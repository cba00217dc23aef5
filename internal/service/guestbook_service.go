package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"weddingsite/internal/models"
	"weddingsite/internal/password"
	"weddingsite/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type GuestbookInput struct {
	Name     string `json:"name" validate:"required,min=1,max=30"`
	Content  string `json:"content" validate:"required,min=1,max=1000"`
	Password string `json:"password" validate:"required,min=4,max=50"`
}

// GuestbookUpdate edits an entry. An empty Name keeps the current one.
type GuestbookUpdate struct {
	Name     string `json:"name" validate:"omitempty,max=30"`
	Content  string `json:"content" validate:"required,min=1,max=1000"`
	Password string `json:"password" validate:"required,max=50"`
}

type GuestbookPage struct {
	Entries []models.GuestbookEntry `json:"entries"`
	Total   int                     `json:"total"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
}

type GuestbookService interface {
	List(ctx context.Context, page, limit int) (*GuestbookPage, error)
	Create(ctx context.Context, in GuestbookInput) (*models.GuestbookEntry, error)
	Update(ctx context.Context, id int64, in GuestbookUpdate) (*models.GuestbookEntry, error)
	Delete(ctx context.Context, id int64, plain string) error
	AdminList(ctx context.Context, page, limit int, includeDeleted bool) (*GuestbookPage, error)
	AdminDelete(ctx context.Context, id int64) error
	AdminRestore(ctx context.Context, id int64) error
}

type guestbookService struct {
	repo repository.GuestbookRepository
	log  *zap.Logger
}

func NewGuestbookService(repo repository.GuestbookRepository, log *zap.Logger) GuestbookService {
	return &guestbookService{
		repo: repo,
		log:  log,
	}
}

func (s *guestbookService) List(ctx context.Context, page, limit int) (*GuestbookPage, error) {
	return s.list(ctx, page, limit, false)
}

func (s *guestbookService) AdminList(ctx context.Context, page, limit int, includeDeleted bool) (*GuestbookPage, error) {
	return s.list(ctx, page, limit, includeDeleted)
}

func (s *guestbookService) list(ctx context.Context, page, limit int, includeDeleted bool) (*GuestbookPage, error) {
	page, limit = normalizePage(page, limit)

	entries, err := s.repo.List(ctx, limit, (page-1)*limit, includeDeleted)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, includeDeleted)
	if err != nil {
		return nil, err
	}

	return &GuestbookPage{
		Entries: entries,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

func (s *guestbookService) Create(ctx context.Context, in GuestbookInput) (*models.GuestbookEntry, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash guestbook password: %w", err)
	}

	entry := &models.GuestbookEntry{
		Name:     in.Name,
		Content:  in.Content,
		Password: hashed,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *guestbookService) Update(ctx context.Context, id int64, in GuestbookUpdate) (*models.GuestbookEntry, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	entry, err := s.authorize(ctx, id, in.Password)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		entry.Name = in.Name
	}
	entry.Content = in.Content

	if err := s.repo.Update(ctx, id, entry.Name, entry.Content); err != nil {
		return nil, notFound(err)
	}

	return entry, nil
}

func (s *guestbookService) Delete(ctx context.Context, id int64, plain string) error {
	if plain == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	if _, err := s.authorize(ctx, id, plain); err != nil {
		return err
	}

	return notFound(s.repo.SoftDelete(ctx, id))
}

// authorize loads an active entry and checks its password. A matching legacy
// plaintext password is replaced by a salted hash.
func (s *guestbookService) authorize(ctx context.Context, id int64, plain string) (*models.GuestbookEntry, error) {
	entry, err := s.repo.GetActive(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	ok, legacy := password.Verify(plain, entry.Password)
	if !ok {
		return nil, ErrInvalidPassword
	}

	if legacy {
		s.rehash(ctx, entry, plain)
	}

	return entry, nil
}

func (s *guestbookService) rehash(ctx context.Context, entry *models.GuestbookEntry, plain string) {
	hashed, err := password.Hash(plain)
	if err == nil {
		err = s.repo.UpdatePassword(ctx, entry.ID, hashed)
	}
	if err != nil {
		s.log.Warn("failed to rehash legacy guestbook password", zap.Int64("id", entry.ID), zap.Error(err))
		return
	}

	entry.Password = hashed
	s.log.Info("rehashed legacy guestbook password", zap.Int64("id", entry.ID))
}

func (s *guestbookService) AdminDelete(ctx context.Context, id int64) error {
	return notFound(s.repo.SoftDelete(ctx, id))
}

func (s *guestbookService) AdminRestore(ctx context.Context, id int64) error {
	return notFound(s.repo.Restore(ctx, id))
}
