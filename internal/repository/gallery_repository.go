package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"weddingsite/internal/models"
)

const galleryColumns = `id, filename, type, order_index, created_at, deleted_at`

type GalleryRepositoryImpl struct {
	DB *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) *GalleryRepositoryImpl {
	return &GalleryRepositoryImpl{DB: db}
}

func (r *GalleryRepositoryImpl) Create(ctx context.Context, item *models.GalleryItem) error {
	return r.insert(ctx, r.DB, item)
}

func (r *GalleryRepositoryImpl) insert(ctx context.Context, q sqlx.QueryerContext, item *models.GalleryItem) error {
	query := `
		INSERT INTO gallery (filename, type, order_index)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRowxContext(ctx, query, item.Filename, item.Type, item.OrderIndex).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert gallery item: %w", err)
	}

	return nil
}

// ReplaceMain soft-deletes every active main image and inserts item in the same
// transaction. It returns the number of main images that were replaced.
func (r *GalleryRepositoryImpl) ReplaceMain(ctx context.Context, item *models.GalleryItem) (int64, error) {
	var replaced int64

	err := withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE gallery SET deleted_at = CURRENT_TIMESTAMP
			WHERE type = 'main' AND deleted_at IS NULL
		`)
		if err != nil {
			return fmt.Errorf("soft delete previous main image: %w", err)
		}

		replaced, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("check replaced main images: %w", err)
		}

		item.Type = models.GalleryTypeMain
		item.OrderIndex = 0
		return r.insert(ctx, tx, item)
	})
	if err != nil {
		return 0, err
	}

	return replaced, nil
}

func (r *GalleryRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.GalleryItem, error) {
	var item models.GalleryItem

	query := `SELECT ` + galleryColumns + ` FROM gallery WHERE id = $1`

	err := r.DB.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("gallery item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get gallery item: %w", err)
	}

	return &item, nil
}

func (r *GalleryRepositoryImpl) ListActive(ctx context.Context) ([]models.GalleryItem, error) {
	query := `
		SELECT ` + galleryColumns + ` FROM gallery
		WHERE deleted_at IS NULL
		ORDER BY (type = 'main') DESC, order_index, id
	`

	return r.list(ctx, query)
}

func (r *GalleryRepositoryImpl) ListAll(ctx context.Context) ([]models.GalleryItem, error) {
	query := `
		SELECT ` + galleryColumns + ` FROM gallery
		ORDER BY (deleted_at IS NOT NULL), (type = 'main') DESC, order_index, id
	`

	return r.list(ctx, query)
}

func (r *GalleryRepositoryImpl) ListActiveGallery(ctx context.Context) ([]models.GalleryItem, error) {
	query := `
		SELECT ` + galleryColumns + ` FROM gallery
		WHERE type = 'gallery' AND deleted_at IS NULL
		ORDER BY order_index, id
	`

	return r.list(ctx, query)
}

func (r *GalleryRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]models.GalleryItem, error) {
	items := []models.GalleryItem{}

	err := r.DB.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gallery items: %w", err)
	}

	return items, nil
}

func (r *GalleryRepositoryImpl) MaxGalleryOrder(ctx context.Context) (int, error) {
	var maxOrder int

	query := `
		SELECT COALESCE(MAX(order_index), 0) FROM gallery
		WHERE type = 'gallery' AND deleted_at IS NULL
	`

	if err := r.DB.GetContext(ctx, &maxOrder, query); err != nil {
		return 0, fmt.Errorf("get max gallery order: %w", err)
	}

	return maxOrder, nil
}

// UpdateOrder writes every position and file name in one transaction.
func (r *GalleryRepositoryImpl) UpdateOrder(ctx context.Context, updates []OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `UPDATE gallery SET order_index = $1, filename = $2 WHERE id = $3`

		for _, u := range updates {
			result, err := tx.ExecContext(ctx, query, u.OrderIndex, u.Filename, u.ID)
			if err != nil {
				return fmt.Errorf("update order of gallery item %d: %w", u.ID, err)
			}

			rowsAffected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("check updated rows: %w", err)
			}
			if rowsAffected == 0 {
				return fmt.Errorf("gallery item %d: %w", u.ID, ErrNotFound)
			}
		}

		return nil
	})
}

func (r *GalleryRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE gallery SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete gallery item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("gallery item %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *GalleryRepositoryImpl) ListPurgeable(ctx context.Context, deletedBefore time.Time) ([]models.GalleryItem, error) {
	query := `
		SELECT ` + galleryColumns + ` FROM gallery
		WHERE deleted_at IS NOT NULL AND deleted_at < $1
		ORDER BY deleted_at
	`

	return r.list(ctx, query, deletedBefore)
}

func (r *GalleryRepositoryImpl) HardDelete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("gallery item %d: %w", id, ErrNotFound)
	}

	return nil
}
