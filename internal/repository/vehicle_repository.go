package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrental/internal/models"
)

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

const vehicleColumns = `id, name, brand, type, license_plate, status, location_id,
	price_per_day, price_per_month, price_per_year, image`

func scanVehicle(row scanner) (models.Vehicle, error) {
	var v models.Vehicle
	if err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Brand,
		&v.Type,
		&v.LicensePlate,
		&v.Status,
		&v.LocationID,
		&v.PricePerDay,
		&v.PricePerMonth,
		&v.PricePerYear,
		&v.Image,
	); err != nil {
		return models.Vehicle{}, mapError(err)
	}
	return v, nil
}

func (r *VehicleRepository) Create(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	const query = `
		INSERT INTO vehicles (
			name, brand, type, license_plate, status, location_id,
			price_per_day, price_per_month, price_per_year, image
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + vehicleColumns

	return scanVehicle(r.pool.QueryRow(ctx, query,
		v.Name,
		v.Brand,
		v.Type,
		v.LicensePlate,
		v.Status,
		v.LocationID,
		v.PricePerDay,
		v.PricePerMonth,
		v.PricePerYear,
		v.Image,
	))
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (models.Vehicle, error) {
	const query = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	return scanVehicle(r.pool.QueryRow(ctx, query, id))
}

func (r *VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	const query = `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	return collect(rows, scanVehicle)
}

func (r *VehicleRepository) ExistsByLicensePlate(ctx context.Context, plate string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM vehicles WHERE license_plate = $1 AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, plate, excludeID).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	const query = `
		UPDATE vehicles
		SET name = $2, brand = $3, type = $4, license_plate = $5, status = $6, location_id = $7,
			price_per_day = $8, price_per_month = $9, price_per_year = $10, image = $11
		WHERE id = $1
		RETURNING ` + vehicleColumns

	return scanVehicle(r.pool.QueryRow(ctx, query,
		v.ID,
		v.Name,
		v.Brand,
		v.Type,
		v.LicensePlate,
		v.Status,
		v.LocationID,
		v.PricePerDay,
		v.PricePerMonth,
		v.PricePerYear,
		v.Image,
	))
}

func (r *VehicleRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	const query = `UPDATE vehicles SET image = $2 WHERE id = $1`
	return expectOne(r.pool.Exec(ctx, query, id, image))
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM vehicles WHERE id = $1`
	return expectOne(r.pool.Exec(ctx, query, id))
}
