package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"weddingsite/internal/models"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context, deletedBefore time.Time) (*models.Stats, error) {
	var stats models.Stats

	err := r.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM gallery WHERE type = 'gallery' AND deleted_at IS NULL) AS gallery_photos,
			EXISTS (SELECT 1 FROM gallery WHERE type = 'main' AND deleted_at IS NULL) AS has_main_image,
			(SELECT COUNT(*) FROM guestbook WHERE deleted_at IS NULL) AS guestbook_entries,
			(SELECT COUNT(*) FROM contacts) AS contacts,
			(SELECT COUNT(*) FROM gallery WHERE deleted_at IS NOT NULL AND deleted_at < $1) AS pending_purge
	`, deletedBefore)
	if err != nil {
		return nil, fmt.Errorf("count dashboard stats: %w", err)
	}

	return &stats, nil
}
