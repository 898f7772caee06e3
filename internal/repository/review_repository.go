package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrental/internal/filter"
	"carrental/internal/models"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

const reviewColumns = `id, rental_id, user_id, rating, comment, created_at`

func scanReview(row scanner) (models.Review, error) {
	var rv models.Review
	if err := row.Scan(
		&rv.ID,
		&rv.RentalID,
		&rv.UserID,
		&rv.Rating,
		&rv.Comment,
		&rv.CreatedAt,
	); err != nil {
		return models.Review{}, mapError(err)
	}
	return rv, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv models.Review) (models.Review, error) {
	const query = `
		INSERT INTO reviews (rental_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns

	return scanReview(r.pool.QueryRow(ctx, query,
		rv.RentalID,
		rv.UserID,
		rv.Rating,
		rv.Comment,
		rv.CreatedAt,
	))
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (models.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	return scanReview(r.pool.QueryRow(ctx, query, id))
}

func (r *ReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	return r.query(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY id`)
}

func (r *ReviewRepository) Find(ctx context.Context, f models.ReviewFilter) ([]models.Review, error) {
	b := filter.New()
	filter.Eq(b, "user_id", f.UserID)
	filter.Eq(b, "rental_id", f.RentalID)
	filter.Between(b, "rating", f.Rating)
	filter.Between(b, "created_at", f.CreatedAt)

	where, args := b.Where()
	return r.query(ctx, `SELECT `+reviewColumns+` FROM reviews`+where+` ORDER BY id`, args...)
}

func (r *ReviewRepository) query(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return collect(rows, scanReview)
}

func (r *ReviewRepository) Update(ctx context.Context, rv models.Review) (models.Review, error) {
	const query = `
		UPDATE reviews
		SET rental_id = $2, user_id = $3, rating = $4, comment = $5
		WHERE id = $1
		RETURNING ` + reviewColumns

	return scanReview(r.pool.QueryRow(ctx, query,
		rv.ID,
		rv.RentalID,
		rv.UserID,
		rv.Rating,
		rv.Comment,
	))
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reviews WHERE id = $1`
	return expectOne(r.pool.Exec(ctx, query, id))
}
