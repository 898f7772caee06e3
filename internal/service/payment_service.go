package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"carrental/internal/events"
	"carrental/internal/models"
)

type UpdatePaymentInput struct {
	RentalID      *int64
	UserID        *int64
	Amount        *decimal.Decimal
	PaymentMethod *string
	PaymentDate   *time.Time
	Status        *string
}

type PaymentService struct {
	payments PaymentStore
	rentals  RentalStore
	users    UserStore
	events   EventEmitter
	log      zerolog.Logger
	now      func() time.Time
}

func NewPaymentService(payments PaymentStore, rentals RentalStore, users UserStore, emitter EventEmitter, log zerolog.Logger) *PaymentService {
	return &PaymentService{
		payments: payments,
		rentals:  rentals,
		users:    users,
		events:   emitterOrNoop(emitter),
		log:      log,
		now:      time.Now,
	}
}

// Create records a payment. Status defaults to PENDING.
func (s *PaymentService) Create(ctx context.Context, p models.Payment) (models.Payment, error) {
	if err := s.checkRefs(ctx, p.RentalID, p.UserID); err != nil {
		return models.Payment{}, err
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now().UTC()
	}

	created, err := s.payments.Create(ctx, p)
	if err != nil {
		return models.Payment{}, translate(err, "Payment", nil, "")
	}
	s.events.Emit(ctx, events.TypePaymentRecorded, paymentPayload(created))
	return created, nil
}

func (s *PaymentService) Get(ctx context.Context, id int64) (models.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	return p, translate(err, "Payment", id, "")
}

func (s *PaymentService) List(ctx context.Context, f models.PaymentFilter) ([]models.Payment, error) {
	if f.IsZero() {
		return s.payments.List(ctx)
	}
	return s.payments.Find(ctx, f)
}

func (s *PaymentService) Update(ctx context.Context, id int64, input UpdatePaymentInput) (models.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return models.Payment{}, translate(err, "Payment", id, "")
	}

	rentalID, userID := p.RentalID, p.UserID
	if input.RentalID != nil {
		rentalID = *input.RentalID
	}
	if input.UserID != nil {
		userID = *input.UserID
	}
	if rentalID != p.RentalID || userID != p.UserID {
		if err := s.checkRefs(ctx, rentalID, userID); err != nil {
			return models.Payment{}, err
		}
	}
	p.RentalID, p.UserID = rentalID, userID

	if input.Amount != nil {
		p.Amount = *input.Amount
	}
	if input.PaymentDate != nil {
		p.PaymentDate = *input.PaymentDate
	}
	setString(&p.PaymentMethod, input.PaymentMethod)
	setString(&p.Status, input.Status)

	updated, err := s.payments.Update(ctx, p)
	return updated, translate(err, "Payment", id, "")
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	return translate(s.payments.Delete(ctx, id), "Payment", id, "")
}

func (s *PaymentService) checkRefs(ctx context.Context, rentalID, userID int64) error {
	if _, err := s.rentals.GetByID(ctx, rentalID); err != nil {
		return translate(err, "Rental", rentalID, "")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return translate(err, "User", userID, "")
	}
	return nil
}

func paymentPayload(p models.Payment) events.PaymentPayload {
	return events.PaymentPayload{
		PaymentID:     p.ID,
		RentalID:      p.RentalID,
		UserID:        p.UserID,
		Amount:        p.Amount.StringFixed(2),
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   p.PaymentDate,
		Status:        p.Status,
	}
}
