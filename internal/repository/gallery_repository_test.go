package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingsite/internal/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return sqlxDB, mock
}

var galleryRowColumns = []string{"id", "filename", "type", "order_index", "created_at", "deleted_at"}

func TestGalleryRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGalleryRepository(db)

	now := time.Now()
	item := &models.GalleryItem{Filename: "2026/10/16/004_abc.jpg", Type: models.GalleryTypeGallery, OrderIndex: 4}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO gallery (filename, type, order_index)`)).
		WithArgs(item.Filename, item.Type, item.OrderIndex).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

	err := repo.Create(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, int64(11), item.ID)
	assert.Equal(t, now, item.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_ReplaceMain(t *testing.T) {
	t.Run("soft deletes previous main and inserts in one transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGalleryRepository(db)

		item := &models.GalleryItem{Filename: "2026/10/16/main_abc.jpg", OrderIndex: 7}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE gallery SET deleted_at = CURRENT_TIMESTAMP`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO gallery`)).
			WithArgs(item.Filename, models.GalleryTypeMain, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(12, time.Now()))
		mock.ExpectCommit()

		replaced, err := repo.ReplaceMain(context.Background(), item)

		require.NoError(t, err)
		assert.Equal(t, int64(1), replaced)
		assert.Equal(t, int64(12), item.ID)
		assert.Equal(t, models.GalleryTypeMain, item.Type)
		assert.Equal(t, 0, item.OrderIndex)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back the soft delete", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE gallery SET deleted_at = CURRENT_TIMESTAMP`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO gallery`)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := repo.ReplaceMain(context.Background(), &models.GalleryItem{Filename: "x.jpg"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert gallery item")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGalleryRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGalleryRepository(db)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(galleryRowColumns).
			AddRow(3, "2026/10/16/001_a.jpg", "gallery", 1, time.Now(), nil)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM gallery WHERE id = $1`)).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		item, err := repo.GetByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), item.ID)
		assert.False(t, item.IsDeleted())
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM gallery WHERE id = $1`)).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(galleryRowColumns))

		_, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_ListActive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGalleryRepository(db)

	rows := sqlmock.NewRows(galleryRowColumns).
		AddRow(1, "main.jpg", "main", 0, time.Now(), nil).
		AddRow(2, "001_a.jpg", "gallery", 1, time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE deleted_at IS NULL`)).WillReturnRows(rows)

	items, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.GalleryTypeMain, items[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_ListAll_IncludesDeleted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGalleryRepository(db)

	deletedAt := time.Now().Add(-time.Hour)
	rows := sqlmock.NewRows(galleryRowColumns).
		AddRow(2, "001_a.jpg", "gallery", 1, time.Now(), nil).
		AddRow(3, "002_b.jpg", "gallery", 2, time.Now(), deletedAt)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY (deleted_at IS NOT NULL)`)).WillReturnRows(rows)

	items, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[1].IsDeleted())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_MaxGalleryOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGalleryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(order_index), 0) FROM gallery`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(5))

	maxOrder, err := repo.MaxGalleryOrder(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, maxOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_UpdateOrder(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE gallery SET order_index = $1, filename = $2 WHERE id = $3`)

	t.Run("commits all updates", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGalleryRepository(db)

		updates := []OrderUpdate{
			{ID: 4, OrderIndex: 1, Filename: "2026/10/16/001_d.jpg"},
			{ID: 2, OrderIndex: 2, Filename: "2026/10/15/002_b.jpg"},
		}

		mock.ExpectBegin()
		for _, u := range updates {
			mock.ExpectExec(query).
				WithArgs(u.OrderIndex, u.Filename, u.ID).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		require.NoError(t, repo.UpdateOrder(context.Background(), updates))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row rolls back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(1, "001_a.jpg", int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.UpdateOrder(context.Background(), []OrderUpdate{{ID: 8, OrderIndex: 1, Filename: "001_a.jpg"}})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGalleryRepository(db)

		require.NoError(t, repo.UpdateOrder(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGalleryRepository_SoftDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGalleryRepository(db)

	query := regexp.QuoteMeta(`UPDATE gallery SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL`)

	mock.ExpectExec(query).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.SoftDelete(context.Background(), 5))

	mock.ExpectExec(query).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), 5), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_ListPurgeable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGalleryRepository(db)

	cutoff := time.Now().Add(-24 * time.Hour)
	rows := sqlmock.NewRows(galleryRowColumns).
		AddRow(9, "old.jpg", "gallery", 3, time.Now().Add(-72*time.Hour), cutoff.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE deleted_at IS NOT NULL AND deleted_at < $1`)).
		WithArgs(cutoff).
		WillReturnRows(rows)

	items, err := repo.ListPurgeable(context.Background(), cutoff)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(9), items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_HardDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGalleryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM gallery WHERE id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.HardDelete(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
