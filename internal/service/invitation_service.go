package service

import (
	"context"
	"time"

	"weddingsite/internal/models"
	"weddingsite/internal/repository"
)

type InvitationInput struct {
	GroomName    string    `json:"groomName" validate:"required,max=50"`
	BrideName    string    `json:"brideName" validate:"required,max=50"`
	WeddingDate  time.Time `json:"weddingDate" validate:"required"`
	Venue        string    `json:"venue" validate:"required,max=100"`
	VenueAddress string    `json:"venueAddress" validate:"omitempty,max=200"`
	MainImage    string    `json:"mainImage" validate:"omitempty,max=500"`
	Message      string    `json:"message" validate:"omitempty,max=2000"`
}

type InvitationService interface {
	Get(ctx context.Context) (*models.Invitation, error)
	Update(ctx context.Context, in InvitationInput) (*models.Invitation, error)
}

type invitationService struct {
	repo repository.InvitationRepository
}

func NewInvitationService(repo repository.InvitationRepository) InvitationService {
	return &invitationService{repo: repo}
}

func (s *invitationService) Get(ctx context.Context) (*models.Invitation, error) {
	invitation, err := s.repo.Get(ctx)
	if err != nil {
		return nil, notFound(err)
	}
	return invitation, nil
}

func (s *invitationService) Update(ctx context.Context, in InvitationInput) (*models.Invitation, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	invitation := &models.Invitation{
		GroomName:    in.GroomName,
		BrideName:    in.BrideName,
		WeddingDate:  in.WeddingDate,
		Venue:        in.Venue,
		VenueAddress: in.VenueAddress,
		Message:      in.Message,
	}
	if in.MainImage != "" {
		mainImage := in.MainImage
		invitation.MainImage = &mainImage
	}

	if err := s.repo.Upsert(ctx, invitation); err != nil {
		return nil, err
	}

	return invitation, nil
}
