package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrental/internal/filter"
	"carrental/internal/models"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

const paymentColumns = `id, rental_id, user_id, amount, payment_method, payment_date, status, created_at`

func scanPayment(row scanner) (models.Payment, error) {
	var p models.Payment
	if err := row.Scan(
		&p.ID,
		&p.RentalID,
		&p.UserID,
		&p.Amount,
		&p.PaymentMethod,
		&p.PaymentDate,
		&p.Status,
		&p.CreatedAt,
	); err != nil {
		return models.Payment{}, mapError(err)
	}
	return p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p models.Payment) (models.Payment, error) {
	const query = `
		INSERT INTO payments (rental_id, user_id, amount, payment_method, payment_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + paymentColumns

	return scanPayment(r.pool.QueryRow(ctx, query,
		p.RentalID,
		p.UserID,
		p.Amount,
		p.PaymentMethod,
		p.PaymentDate,
		p.Status,
		p.CreatedAt,
	))
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (models.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.pool.QueryRow(ctx, query, id))
}

func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	return r.query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

func (r *PaymentRepository) Find(ctx context.Context, f models.PaymentFilter) ([]models.Payment, error) {
	b := filter.New()
	filter.Eq(b, "user_id", f.UserID)
	filter.Eq(b, "rental_id", f.RentalID)
	filter.EqString(b, "status", f.Status)
	filter.EqString(b, "payment_method", f.PaymentMethod)
	filter.Between(b, "amount", f.Amount)
	filter.Between(b, "payment_date", f.PaymentDate)

	where, args := b.Where()
	return r.query(ctx, `SELECT `+paymentColumns+` FROM payments`+where+` ORDER BY id`, args...)
}

func (r *PaymentRepository) query(ctx context.Context, query string, args ...any) ([]models.Payment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return collect(rows, scanPayment)
}

func (r *PaymentRepository) Update(ctx context.Context, p models.Payment) (models.Payment, error) {
	const query = `
		UPDATE payments
		SET rental_id = $2, user_id = $3, amount = $4, payment_method = $5, payment_date = $6, status = $7
		WHERE id = $1
		RETURNING ` + paymentColumns

	return scanPayment(r.pool.QueryRow(ctx, query,
		p.ID,
		p.RentalID,
		p.UserID,
		p.Amount,
		p.PaymentMethod,
		p.PaymentDate,
		p.Status,
	))
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM payments WHERE id = $1`
	return expectOne(r.pool.Exec(ctx, query, id))
}
