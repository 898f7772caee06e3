package service

import (
	"context"

	"carrental/internal/models"
)

// Storage contracts consumed by the services. The pgx repositories satisfy
// them; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	UpdateRole(ctx context.Context, id, roleID int64) error
	Delete(ctx context.Context, id int64) error
}

type RoleStore interface {
	Create(ctx context.Context, name string) (models.Role, error)
	GetOrCreate(ctx context.Context, name string) (models.Role, error)
	GetByID(ctx context.Context, id int64) (models.Role, error)
	GetByName(ctx context.Context, name string) (models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, role models.Role) (models.Role, error)
	Delete(ctx context.Context, id int64) error
}

type LocationStore interface {
	Create(ctx context.Context, loc models.Location) (models.Location, error)
	GetByID(ctx context.Context, id int64) (models.Location, error)
	List(ctx context.Context) ([]models.Location, error)
	ExistsByNameAndAddress(ctx context.Context, name, address string, excludeID int64) (bool, error)
	Update(ctx context.Context, loc models.Location) (models.Location, error)
	Delete(ctx context.Context, id int64) error
}

type VehicleStore interface {
	Create(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	GetByID(ctx context.Context, id int64) (models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	ExistsByLicensePlate(ctx context.Context, plate string, excludeID int64) (bool, error)
	Update(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	UpdateImage(ctx context.Context, id int64, image string) error
	Delete(ctx context.Context, id int64) error
}

type RentalStore interface {
	Create(ctx context.Context, rental models.Rental) (models.Rental, error)
	GetByID(ctx context.Context, id int64) (models.Rental, error)
	List(ctx context.Context) ([]models.Rental, error)
	Find(ctx context.Context, f models.RentalFilter) ([]models.Rental, error)
	Update(ctx context.Context, rental models.Rental) (models.Rental, error)
	Delete(ctx context.Context, id int64) error
}

type PaymentStore interface {
	Create(ctx context.Context, p models.Payment) (models.Payment, error)
	GetByID(ctx context.Context, id int64) (models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
	Find(ctx context.Context, f models.PaymentFilter) ([]models.Payment, error)
	Update(ctx context.Context, p models.Payment) (models.Payment, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewStore interface {
	Create(ctx context.Context, rv models.Review) (models.Review, error)
	GetByID(ctx context.Context, id int64) (models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
	Find(ctx context.Context, f models.ReviewFilter) ([]models.Review, error)
	Update(ctx context.Context, rv models.Review) (models.Review, error)
	Delete(ctx context.Context, id int64) error
}

// EventEmitter publishes domain events on a best-effort basis.
type EventEmitter interface {
	Emit(ctx context.Context, eventType string, payload any)
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, string, any) {}

func emitterOrNoop(e EventEmitter) EventEmitter {
	if e == nil {
		return noopEmitter{}
	}
	return e
}
