package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"weddingsite/internal/config"
	"weddingsite/internal/database"
	handlers "weddingsite/internal/handler"
	"weddingsite/internal/imageproc"
	"weddingsite/internal/repository"
	"weddingsite/internal/service"
	"weddingsite/internal/storage"
)

type App struct {
	Cfg      *config.Config
	Log      *zap.Logger
	DB       *database.DB
	Repo     *repository.Repository
	Storage  storage.Storage
	Services *service.Service
	Handlers *handlers.Handlers
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	store, err := NewStorage(ctx, cfg)
	if err != nil {
		db.CloseDB()
		return nil, fmt.Errorf("init storage: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, store, imageproc.NewProcessor(cfg.Images.Quality), log)

	return &App{
		Cfg:      cfg,
		Log:      log,
		DB:       db,
		Repo:     repo,
		Storage:  store,
		Services: services,
		Handlers: handlers.NewHandlers(services, db, cfg, log),
	}, nil
}

// NewStorage returns the image store selected by STORAGE_DRIVER.
func NewStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMinIO:
		return storage.NewMinIOStorage(ctx, cfg.MinIO)
	default:
		return storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.URLPrefix)
	}
}

func (a *App) Close() {
	if err := a.DB.CloseDB(); err != nil {
		a.Log.Warn("failed to close database", zap.Error(err))
	}
}
