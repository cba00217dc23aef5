package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"weddingsite/internal/models"
)

const guestbookColumns = `id, name, content, password, created_at, deleted_at`

type GuestbookRepositoryImpl struct {
	DB *sqlx.DB
}

func NewGuestbookRepository(db *sqlx.DB) *GuestbookRepositoryImpl {
	return &GuestbookRepositoryImpl{DB: db}
}

func (r *GuestbookRepositoryImpl) Create(ctx context.Context, entry *models.GuestbookEntry) error {
	query := `
		INSERT INTO guestbook (name, content, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowxContext(ctx, query, entry.Name, entry.Content, entry.Password).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert guestbook entry: %w", err)
	}

	return nil
}

func (r *GuestbookRepositoryImpl) GetActive(ctx context.Context, id int64) (*models.GuestbookEntry, error) {
	var entry models.GuestbookEntry

	query := `SELECT ` + guestbookColumns + ` FROM guestbook WHERE id = $1 AND deleted_at IS NULL`

	err := r.DB.GetContext(ctx, &entry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("guestbook entry %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get guestbook entry: %w", err)
	}

	return &entry, nil
}

func (r *GuestbookRepositoryImpl) List(ctx context.Context, limit, offset int, includeDeleted bool) ([]models.GuestbookEntry, error) {
	query := `SELECT ` + guestbookColumns + ` FROM guestbook`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`

	entries := []models.GuestbookEntry{}
	if err := r.DB.SelectContext(ctx, &entries, query, limit, offset); err != nil {
		return nil, fmt.Errorf("list guestbook entries: %w", err)
	}

	return entries, nil
}

func (r *GuestbookRepositoryImpl) Count(ctx context.Context, includeDeleted bool) (int, error) {
	query := `SELECT COUNT(*) FROM guestbook`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}

	var count int
	if err := r.DB.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count guestbook entries: %w", err)
	}

	return count, nil
}

func (r *GuestbookRepositoryImpl) Update(ctx context.Context, id int64, name, content string) error {
	query := `UPDATE guestbook SET name = $1, content = $2 WHERE id = $3 AND deleted_at IS NULL`

	return r.execOne(ctx, "update guestbook entry", id, query, name, content, id)
}

func (r *GuestbookRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE guestbook SET password = $1 WHERE id = $2`

	return r.execOne(ctx, "update guestbook password", id, query, passwordHash, id)
}

func (r *GuestbookRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE guestbook SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "soft delete guestbook entry", id, query, id)
}

func (r *GuestbookRepositoryImpl) Restore(ctx context.Context, id int64) error {
	query := `UPDATE guestbook SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`

	return r.execOne(ctx, "restore guestbook entry", id, query, id)
}

func (r *GuestbookRepositoryImpl) execOne(ctx context.Context, op string, id int64, query string, args ...interface{}) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("guestbook entry %d: %w", id, ErrNotFound)
	}

	return nil
}
