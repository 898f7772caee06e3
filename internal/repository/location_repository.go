package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrental/internal/models"
)

type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

func scanLocation(row scanner) (models.Location, error) {
	var loc models.Location
	if err := row.Scan(&loc.ID, &loc.Name, &loc.Address); err != nil {
		return models.Location{}, mapError(err)
	}
	return loc, nil
}

func (r *LocationRepository) Create(ctx context.Context, loc models.Location) (models.Location, error) {
	const query = `INSERT INTO locations (name, address) VALUES ($1, $2) RETURNING id, name, address`
	return scanLocation(r.pool.QueryRow(ctx, query, loc.Name, loc.Address))
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (models.Location, error) {
	const query = `SELECT id, name, address FROM locations WHERE id = $1`
	return scanLocation(r.pool.QueryRow(ctx, query, id))
}

func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	const query = `SELECT id, name, address FROM locations ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	return collect(rows, scanLocation)
}

func (r *LocationRepository) ExistsByNameAndAddress(ctx context.Context, name, address string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM locations WHERE name = $1 AND address = $2 AND id <> $3)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, address, excludeID).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func (r *LocationRepository) Update(ctx context.Context, loc models.Location) (models.Location, error) {
	const query = `UPDATE locations SET name = $2, address = $3 WHERE id = $1 RETURNING id, name, address`
	return scanLocation(r.pool.QueryRow(ctx, query, loc.ID, loc.Name, loc.Address))
}

func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM locations WHERE id = $1`
	return expectOne(r.pool.Exec(ctx, query, id))
}
