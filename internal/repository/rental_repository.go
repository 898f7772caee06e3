package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrental/internal/filter"
	"carrental/internal/models"
)

type RentalRepository struct {
	pool *pgxpool.Pool
}

func NewRentalRepository(pool *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{pool: pool}
}

const rentalColumns = `id, user_id, vehicle_id, start_time, end_time, total_price, status, pickup_location, created_at`

func scanRental(row scanner) (models.Rental, error) {
	var rental models.Rental
	if err := row.Scan(
		&rental.ID,
		&rental.UserID,
		&rental.VehicleID,
		&rental.StartTime,
		&rental.EndTime,
		&rental.TotalPrice,
		&rental.Status,
		&rental.PickupLocation,
		&rental.CreatedAt,
	); err != nil {
		return models.Rental{}, mapError(err)
	}
	return rental, nil
}

func (r *RentalRepository) Create(ctx context.Context, rental models.Rental) (models.Rental, error) {
	const query = `
		INSERT INTO rentals (user_id, vehicle_id, start_time, end_time, total_price, status, pickup_location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + rentalColumns

	return scanRental(r.pool.QueryRow(ctx, query,
		rental.UserID,
		rental.VehicleID,
		rental.StartTime,
		rental.EndTime,
		rental.TotalPrice,
		rental.Status,
		rental.PickupLocation,
		rental.CreatedAt,
	))
}

func (r *RentalRepository) GetByID(ctx context.Context, id int64) (models.Rental, error) {
	const query = `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.pool.QueryRow(ctx, query, id))
}

func (r *RentalRepository) List(ctx context.Context) ([]models.Rental, error) {
	return r.query(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY id`)
}

// Find returns rentals matching every constraint set in f.
func (r *RentalRepository) Find(ctx context.Context, f models.RentalFilter) ([]models.Rental, error) {
	b := filter.New()
	filter.Eq(b, "user_id", f.UserID)
	filter.Eq(b, "vehicle_id", f.VehicleID)
	filter.EqString(b, "status", f.Status)
	filter.Between(b, "start_time", f.StartTime)
	filter.Between(b, "end_time", f.EndTime)

	where, args := b.Where()
	return r.query(ctx, `SELECT `+rentalColumns+` FROM rentals`+where+` ORDER BY id`, args...)
}

func (r *RentalRepository) query(ctx context.Context, query string, args ...any) ([]models.Rental, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return collect(rows, scanRental)
}

func (r *RentalRepository) Update(ctx context.Context, rental models.Rental) (models.Rental, error) {
	const query = `
		UPDATE rentals
		SET user_id = $2, vehicle_id = $3, start_time = $4, end_time = $5, total_price = $6,
			status = $7, pickup_location = $8
		WHERE id = $1
		RETURNING ` + rentalColumns

	return scanRental(r.pool.QueryRow(ctx, query,
		rental.ID,
		rental.UserID,
		rental.VehicleID,
		rental.StartTime,
		rental.EndTime,
		rental.TotalPrice,
		rental.Status,
		rental.PickupLocation,
	))
}

func (r *RentalRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM rentals WHERE id = $1`
	return expectOne(r.pool.Exec(ctx, query, id))
}
