package test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"weddingsite/internal/models"
	"weddingsite/internal/service"
)

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) ListPublic(ctx context.Context) (*service.GalleryListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GalleryListing), args.Error(1)
}

func (m *MockGalleryService) ListAdmin(ctx context.Context) ([]models.GalleryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) Upload(ctx context.Context, itemType string, file io.Reader) (*models.GalleryItem, error) {
	args := m.Called(ctx, itemType, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGalleryService) Reorder(ctx context.Context, sourceID, targetID int64) ([]models.GalleryItem, error) {
	args := m.Called(ctx, sourceID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) Purge(ctx context.Context, olderThan time.Duration) (*service.PurgeResult, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PurgeResult), args.Error(1)
}

type MockGuestbookService struct {
	mock.Mock
}

func (m *MockGuestbookService) List(ctx context.Context, page, limit int) (*service.GuestbookPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GuestbookPage), args.Error(1)
}

func (m *MockGuestbookService) Create(ctx context.Context, in service.GuestbookInput) (*models.GuestbookEntry, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuestbookEntry), args.Error(1)
}

func (m *MockGuestbookService) Update(ctx context.Context, id int64, in service.GuestbookUpdate) (*models.GuestbookEntry, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuestbookEntry), args.Error(1)
}

func (m *MockGuestbookService) Delete(ctx context.Context, id int64, plain string) error {
	args := m.Called(ctx, id, plain)
	return args.Error(0)
}

func (m *MockGuestbookService) AdminList(ctx context.Context, page, limit int, includeDeleted bool) (*service.GuestbookPage, error) {
	args := m.Called(ctx, page, limit, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GuestbookPage), args.Error(1)
}

func (m *MockGuestbookService) AdminDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGuestbookService) AdminRestore(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) List(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockContactService) Create(ctx context.Context, in service.ContactInput) (*models.Contact, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactService) Update(ctx context.Context, id int64, in service.ContactInput) (*models.Contact, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInvitationService struct {
	mock.Mock
}

func (m *MockInvitationService) Get(ctx context.Context) (*models.Invitation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invitation), args.Error(1)
}

func (m *MockInvitationService) Update(ctx context.Context, in service.InvitationInput) (*models.Invitation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invitation), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, in service.LoginInput) (*service.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *MockAuthService) ParseSession(token string) (*service.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *MockAuthService) SetPassword(ctx context.Context, username, password string) (*models.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAuthService) Bootstrap(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Get(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
