package service

import (
	"context"
	"time"

	"weddingsite/internal/models"
	"weddingsite/internal/repository"
)

type StatsService interface {
	Get(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	statsRepo  repository.StatsRepository
	purgeAfter time.Duration
	now        func() time.Time
}

func NewStatsService(statsRepo repository.StatsRepository, purgeAfter time.Duration) StatsService {
	return &statsService{
		statsRepo:  statsRepo,
		purgeAfter: purgeAfter,
		now:        time.Now,
	}
}

func (s *statsService) Get(ctx context.Context) (*models.Stats, error) {
	return s.statsRepo.Get(ctx, s.now().Add(-s.purgeAfter))
}
