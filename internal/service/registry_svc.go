package service

import (
	"context"
	"strings"

	"court-reservation-server/internal/domain"
	"court-reservation-server/internal/repository"
)

// RegistryService covers the client and court registration screens.
type RegistryService struct {
	clients *repository.ClientRepo
	courts  *repository.CourtRepo
}

func NewRegistryService(clients *repository.ClientRepo, courts *repository.CourtRepo) *RegistryService {
	return &RegistryService{clients: clients, courts: courts}
}

type ClientInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

type CourtInput struct {
	Name     string
	Category string
	Location string
}

func (s *RegistryService) CreateClient(ctx context.Context, in ClientInput) (*domain.Client, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return nil, domain.ErrMissingFields
	}
	c := &domain.Client{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RegistryService) CreateCourt(ctx context.Context, in CourtInput) (*domain.Court, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, domain.ErrMissingFields
	}
	c := &domain.Court{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Location: strings.TrimSpace(in.Location),
	}
	if err := s.courts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RegistryService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *RegistryService) ListCourts(ctx context.Context) ([]domain.Court, error) {
	return s.courts.List(ctx)
}

func (s *RegistryService) ClientByID(ctx context.Context, id uint) (*domain.Client, error) {
	return s.clients.ByID(ctx, id)
}
