package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"weddingsite/internal/models"
)

var ErrNotFound = errors.New("record not found")

// OrderUpdate is the new position and file name of one gallery row.
type OrderUpdate struct {
	ID         int64
	OrderIndex int
	Filename   string
}

type GalleryRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	ReplaceMain(ctx context.Context, item *models.GalleryItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.GalleryItem, error)
	ListActive(ctx context.Context) ([]models.GalleryItem, error)
	ListAll(ctx context.Context) ([]models.GalleryItem, error)
	ListActiveGallery(ctx context.Context) ([]models.GalleryItem, error)
	MaxGalleryOrder(ctx context.Context) (int, error)
	UpdateOrder(ctx context.Context, updates []OrderUpdate) error
	SoftDelete(ctx context.Context, id int64) error
	ListPurgeable(ctx context.Context, deletedBefore time.Time) ([]models.GalleryItem, error)
	HardDelete(ctx context.Context, id int64) error
}

type GuestbookRepository interface {
	Create(ctx context.Context, entry *models.GuestbookEntry) error
	GetActive(ctx context.Context, id int64) (*models.GuestbookEntry, error)
	List(ctx context.Context, limit, offset int, includeDeleted bool) ([]models.GuestbookEntry, error)
	Count(ctx context.Context, includeDeleted bool) (int, error)
	Update(ctx context.Context, id int64, name, content string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

type ContactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id int64) error
}

type InvitationRepository interface {
	Get(ctx context.Context) (*models.Invitation, error)
	Upsert(ctx context.Context, invitation *models.Invitation) error
}

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	SetPassword(ctx context.Context, username, password string) (*models.Admin, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.Admin, error)
	Count(ctx context.Context) (int, error)
}

type StatsRepository interface {
	Get(ctx context.Context, deletedBefore time.Time) (*models.Stats, error)
}

type Repository struct {
	Gallery    GalleryRepository
	Guestbook  GuestbookRepository
	Contact    ContactRepository
	Invitation InvitationRepository
	Admin      AdminRepository
	Stats      StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Gallery:    NewGalleryRepository(db),
		Guestbook:  NewGuestbookRepository(db),
		Contact:    NewContactRepository(db),
		Invitation: NewInvitationRepository(db),
		Admin:      NewAdminRepository(db),
		Stats:      NewStatsRepository(db),
	}
}

// withTx runs fn inside a transaction, committing on success and rolling back on
// error or panic.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(tx)
}
