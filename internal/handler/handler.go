package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"weddingsite/internal/config"
	"weddingsite/internal/service"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	GalleryService    service.GalleryService
	GuestbookService  service.GuestbookService
	ContactService    service.ContactService
	InvitationService service.InvitationService
	AuthService       service.AuthService
	StatsService      service.StatsService
	Health            HealthChecker
	Cfg               *config.Config
	Log               *zap.Logger
	Validate          *validator.Validate
}

func NewHandlers(services *service.Service, health HealthChecker, cfg *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		GalleryService:    services.Gallery,
		GuestbookService:  services.Guestbook,
		ContactService:    services.Contact,
		InvitationService: services.Invitation,
		AuthService:       services.Auth,
		StatsService:      services.Stats,
		Health:            health,
		Cfg:               cfg,
		Log:               log,
		Validate:          validator.New(),
	}
}
