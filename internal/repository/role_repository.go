package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrental/internal/models"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func scanRole(row scanner) (models.Role, error) {
	var role models.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		return models.Role{}, mapError(err)
	}
	return role, nil
}

func (r *RoleRepository) Create(ctx context.Context, name string) (models.Role, error) {
	const query = `INSERT INTO roles (role_name) VALUES ($1) RETURNING id, role_name`
	return scanRole(r.pool.QueryRow(ctx, query, name))
}

// GetOrCreate returns the role named name, inserting it when missing.
// When a concurrent insert wins, neither branch of the statement sees the
// row under the statement snapshot, so the lookup is repeated once.
func (r *RoleRepository) GetOrCreate(ctx context.Context, name string) (models.Role, error) {
	role, err := r.getOrCreate(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return r.GetByName(ctx, name)
	}
	return role, err
}

func (r *RoleRepository) getOrCreate(ctx context.Context, name string) (models.Role, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO roles (role_name) VALUES ($1)
			ON CONFLICT (role_name) DO NOTHING
			RETURNING id, role_name
		)
		SELECT id, role_name FROM inserted
		UNION ALL
		SELECT id, role_name FROM roles WHERE role_name = $1
		LIMIT 1
	`
	return scanRole(r.pool.QueryRow(ctx, query, name))
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (models.Role, error) {
	const query = `SELECT id, role_name FROM roles WHERE id = $1`
	return scanRole(r.pool.QueryRow(ctx, query, id))
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (models.Role, error) {
	const query = `SELECT id, role_name FROM roles WHERE role_name = $1`
	return scanRole(r.pool.QueryRow(ctx, query, name))
}

func (r *RoleRepository) List(ctx context.Context) ([]models.Role, error) {
	const query = `SELECT id, role_name FROM roles ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	return collect(rows, scanRole)
}

func (r *RoleRepository) Update(ctx context.Context, role models.Role) (models.Role, error) {
	const query = `UPDATE roles SET role_name = $2 WHERE id = $1 RETURNING id, role_name`
	return scanRole(r.pool.QueryRow(ctx, query, role.ID, role.Name))
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM roles WHERE id = $1`
	return expectOne(r.pool.Exec(ctx, query, id))
}
