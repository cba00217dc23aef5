package service

import (
	"go.uber.org/zap"

	"weddingsite/internal/config"
	"weddingsite/internal/imageproc"
	"weddingsite/internal/repository"
	"weddingsite/internal/storage"
)

type Service struct {
	Gallery    GalleryService
	Guestbook  GuestbookService
	Contact    ContactService
	Invitation InvitationService
	Auth       AuthService
	Stats      StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage, processor *imageproc.Processor, log *zap.Logger) *Service {
	return &Service{
		Gallery: NewGalleryService(rep.Gallery, store, processor, GalleryOptions{
			MaxUploadSize:   cfg.MaxUploadSize,
			MaxWidthMain:    cfg.Images.MaxWidthMain,
			MaxWidthGallery: cfg.Images.MaxWidthGallery,
		}, log.Named("gallery")),
		Guestbook:  NewGuestbookService(rep.Guestbook, log.Named("guestbook")),
		Contact:    NewContactService(rep.Contact),
		Invitation: NewInvitationService(rep.Invitation),
		Auth:       NewAuthService(rep.Admin, cfg.Session, log.Named("auth")),
		Stats:      NewStatsService(rep.Stats, cfg.Purge.After),
	}
}
