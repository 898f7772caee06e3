package service

import (
	"context"
	"fmt"

	"carrental/internal/models"
)

type LocationService struct {
	locations LocationStore
}

func NewLocationService(locations LocationStore) *LocationService {
	return &LocationService{locations: locations}
}

func locationTaken(name, address string) error {
	return conflict("Location with name %s and address %s already exists", name, address)
}

func (s *LocationService) Create(ctx context.Context, loc models.Location) (models.Location, error) {
	if err := s.ensureFree(ctx, loc.Name, loc.Address, 0); err != nil {
		return models.Location{}, err
	}
	created, err := s.locations.Create(ctx, loc)
	return created, translate(err, "Location", nil, locationTaken(loc.Name, loc.Address).Error())
}

func (s *LocationService) Get(ctx context.Context, id int64) (models.Location, error) {
	loc, err := s.locations.GetByID(ctx, id)
	return loc, translate(err, "Location", id, "")
}

func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	return s.locations.List(ctx)
}

type UpdateLocationInput struct {
	Name    *string
	Address *string
}

func (s *LocationService) Update(ctx context.Context, id int64, input UpdateLocationInput) (models.Location, error) {
	loc, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return models.Location{}, translate(err, "Location", id, "")
	}
	if input.Name != nil {
		loc.Name = *input.Name
	}
	if input.Address != nil {
		loc.Address = *input.Address
	}
	if err := s.ensureFree(ctx, loc.Name, loc.Address, id); err != nil {
		return models.Location{}, err
	}

	updated, err := s.locations.Update(ctx, loc)
	return updated, translate(err, "Location", id, locationTaken(loc.Name, loc.Address).Error())
}

func (s *LocationService) Delete(ctx context.Context, id int64) error {
	return translate(s.locations.Delete(ctx, id), "Location", id, "")
}

func (s *LocationService) ensureFree(ctx context.Context, name, address string, id int64) error {
	taken, err := s.locations.ExistsByNameAndAddress(ctx, name, address, id)
	if err != nil {
		return fmt.Errorf("check location: %w", err)
	}
	if taken {
		return locationTaken(name, address)
	}
	return nil
}
