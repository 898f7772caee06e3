package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"carrental/internal/events"
	"carrental/internal/models"
)

type UpdateRentalInput struct {
	UserID         *int64
	VehicleID      *int64
	StartTime      *time.Time
	EndTime        *time.Time
	TotalPrice     *decimal.Decimal
	Status         *string
	PickupLocation *string
}

type RentalService struct {
	rentals  RentalStore
	users    UserStore
	vehicles VehicleStore
	events   EventEmitter
	log      zerolog.Logger
	now      func() time.Time
}

func NewRentalService(rentals RentalStore, users UserStore, vehicles VehicleStore, emitter EventEmitter, log zerolog.Logger) *RentalService {
	return &RentalService{
		rentals:  rentals,
		users:    users,
		vehicles: vehicles,
		events:   emitterOrNoop(emitter),
		log:      log,
		now:      time.Now,
	}
}

func (s *RentalService) Create(ctx context.Context, r models.Rental) (models.Rental, error) {
	if err := s.checkRefs(ctx, r.UserID, r.VehicleID); err != nil {
		return models.Rental{}, err
	}
	if err := checkPeriod(r.StartTime, r.EndTime); err != nil {
		return models.Rental{}, err
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now().UTC()
	}

	created, err := s.rentals.Create(ctx, r)
	if err != nil {
		return models.Rental{}, translate(err, "Rental", nil, "")
	}
	s.events.Emit(ctx, events.TypeRentalCreated, rentalPayload(created))
	return created, nil
}

func (s *RentalService) Get(ctx context.Context, id int64) (models.Rental, error) {
	r, err := s.rentals.GetByID(ctx, id)
	return r, translate(err, "Rental", id, "")
}

// List returns every rental when f is empty, otherwise the rentals matching all of f.
func (s *RentalService) List(ctx context.Context, f models.RentalFilter) ([]models.Rental, error) {
	if f.IsZero() {
		return s.rentals.List(ctx)
	}
	return s.rentals.Find(ctx, f)
}

func (s *RentalService) Update(ctx context.Context, id int64, input UpdateRentalInput) (models.Rental, error) {
	r, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return models.Rental{}, translate(err, "Rental", id, "")
	}

	userID, vehicleID := r.UserID, r.VehicleID
	if input.UserID != nil {
		userID = *input.UserID
	}
	if input.VehicleID != nil {
		vehicleID = *input.VehicleID
	}
	if userID != r.UserID || vehicleID != r.VehicleID {
		if err := s.checkRefs(ctx, userID, vehicleID); err != nil {
			return models.Rental{}, err
		}
	}
	r.UserID, r.VehicleID = userID, vehicleID

	if input.StartTime != nil {
		r.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		r.EndTime = *input.EndTime
	}
	if err := checkPeriod(r.StartTime, r.EndTime); err != nil {
		return models.Rental{}, err
	}
	if input.TotalPrice != nil {
		r.TotalPrice = *input.TotalPrice
	}
	setString(&r.Status, input.Status)
	if input.PickupLocation != nil {
		r.PickupLocation = input.PickupLocation
	}

	updated, err := s.rentals.Update(ctx, r)
	if err != nil {
		return models.Rental{}, translate(err, "Rental", id, "")
	}
	s.events.Emit(ctx, events.TypeRentalUpdated, rentalPayload(updated))
	return updated, nil
}

func (s *RentalService) Delete(ctx context.Context, id int64) error {
	return translate(s.rentals.Delete(ctx, id), "Rental", id, "")
}

func (s *RentalService) checkRefs(ctx context.Context, userID, vehicleID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return translate(err, "User", userID, "")
	}
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return translate(err, "Vehicle", vehicleID, "")
	}
	return nil
}

func checkPeriod(start, end time.Time) error {
	if end.Before(start) {
		return invalid("end_time", "End time must not be before start time")
	}
	return nil
}

func rentalPayload(r models.Rental) events.RentalPayload {
	return events.RentalPayload{
		RentalID:   r.ID,
		UserID:     r.UserID,
		VehicleID:  r.VehicleID,
		Status:     r.Status,
		TotalPrice: r.TotalPrice.StringFixed(2),
	}
}
