package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"weddingsite/internal/models"
	"weddingsite/internal/repository"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockGalleryRepository) ReplaceMain(ctx context.Context, item *models.GalleryItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGalleryRepository) GetByID(ctx context.Context, id int64) (*models.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) ListActive(ctx context.Context) ([]models.GalleryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) ListAll(ctx context.Context) ([]models.GalleryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) ListActiveGallery(ctx context.Context) ([]models.GalleryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) MaxGalleryOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGalleryRepository) UpdateOrder(ctx context.Context, updates []repository.OrderUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockGalleryRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGalleryRepository) ListPurgeable(ctx context.Context, deletedBefore time.Time) ([]models.GalleryItem, error) {
	args := m.Called(ctx, deletedBefore)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) HardDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGuestbookRepository struct {
	mock.Mock
}

func (m *MockGuestbookRepository) Create(ctx context.Context, entry *models.GuestbookEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGuestbookRepository) GetActive(ctx context.Context, id int64) (*models.GuestbookEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuestbookEntry), args.Error(1)
}

func (m *MockGuestbookRepository) List(ctx context.Context, limit, offset int, includeDeleted bool) ([]models.GuestbookEntry, error) {
	args := m.Called(ctx, limit, offset, includeDeleted)
	return args.Get(0).([]models.GuestbookEntry), args.Error(1)
}

func (m *MockGuestbookRepository) Count(ctx context.Context, includeDeleted bool) (int, error) {
	args := m.Called(ctx, includeDeleted)
	return args.Int(0), args.Error(1)
}

func (m *MockGuestbookRepository) Update(ctx context.Context, id int64, name, content string) error {
	args := m.Called(ctx, id, name, content)
	return args.Error(0)
}

func (m *MockGuestbookRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockGuestbookRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGuestbookRepository) Restore(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Get(ctx context.Context) (*models.Invitation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) Upsert(ctx context.Context, invitation *models.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) SetPassword(ctx context.Context, username, password string) (*models.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) VerifyPassword(ctx context.Context, username, password string) (*models.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Get(ctx context.Context, deletedBefore time.Time) (*models.Stats, error) {
	args := m.Called(ctx, deletedBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}
