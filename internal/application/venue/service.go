package venue

import (
	"context"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context) ([]*domain.Venue, error)
	ListByCity(ctx context.Context, city string) ([]*domain.Venue, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo VenueRepo
}

func New(repo VenueRepo) *Service { return &Service{repo: repo} }

type UpsertCmd struct {
	Name     string
	City     string
	Capacity int
}

func (s *Service) Create(ctx context.Context, cmd UpsertCmd) (*domain.Venue, error) {
	v, err := domain.NewVenue(cmd.Name, cmd.City, cmd.Capacity)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, domain.ErrPersistence("venue create failed", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, venueID int64, cmd UpsertCmd) (*domain.Venue, error) {
	v, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if err := v.ApplyUpdate(cmd.Name, cmd.City, cmd.Capacity); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, domain.ErrPersistence("venue update failed", err)
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, venueID int64) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, venueID)
}

func (s *Service) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCity(ctx context.Context, city string) ([]*domain.Venue, error) {
	return s.repo.ListByCity(ctx, city)
}

func (s *Service) Delete(ctx context.Context, venueID int64) error {
	return s.repo.Delete(ctx, venueID)
}
