package service

import (
	"context"

	"weddingsite/internal/models"
	"weddingsite/internal/repository"
)

type ContactInput struct {
	Side          string `json:"side" validate:"required,oneof=groom bride"`
	Relationship  string `json:"relationship" validate:"required,max=50"`
	Name          string `json:"name" validate:"required,max=50"`
	Phone         string `json:"phone" validate:"omitempty,max=30"`
	BankName      string `json:"bankName" validate:"omitempty,max=50"`
	AccountNumber string `json:"accountNumber" validate:"omitempty,max=50"`
	KakaoPayURL   string `json:"kakaoPayUrl" validate:"omitempty,url"`
}

func (in ContactInput) apply(contact *models.Contact) {
	contact.Side = in.Side
	contact.Relationship = in.Relationship
	contact.Name = in.Name
	contact.Phone = in.Phone
	contact.BankName = in.BankName
	contact.AccountNumber = in.AccountNumber
	contact.KakaoPayURL = nil
	if in.KakaoPayURL != "" {
		url := in.KakaoPayURL
		contact.KakaoPayURL = &url
	}
}

type ContactService interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, in ContactInput) (*models.Contact, error)
	Update(ctx context.Context, id int64, in ContactInput) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactService) Create(ctx context.Context, in ContactInput) (*models.Contact, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	contact := &models.Contact{}
	in.apply(contact)

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *contactService) Update(ctx context.Context, id int64, in ContactInput) (*models.Contact, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	in.apply(contact)

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, notFound(err)
	}

	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id))
}
