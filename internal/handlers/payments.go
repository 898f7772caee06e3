package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carrental/internal/filter"
	"carrental/internal/models"
	"carrental/internal/response"
	"carrental/internal/service"
	"carrental/internal/validation"
)

type paymentRequest struct {
	RentalID      int64            `json:"rental_id" validate:"required,gt=0"`
	UserID        int64            `json:"user_id" validate:"required,gt=0"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod string           `json:"payment_method" validate:"required,notblank,max=50"`
	PaymentDate   *string          `json:"payment_date"`
	Status        string           `json:"status" validate:"omitempty,max=50"`
	CreatedAt     *string          `json:"created_at"`

	paidAt  time.Time
	created *time.Time
}

func (r *paymentRequest) Validate() validation.Errors {
	errs := validation.Struct(r)
	validation.RequirePositive(errs, "amount", r.Amount)
	r.paidAt = requiredTime(errs, "payment_date", r.PaymentDate)
	r.created = timeField(errs, "created_at", r.CreatedAt)
	return errs
}

type updatePaymentRequest struct {
	RentalID      *int64           `json:"rental_id" validate:"omitempty,gt=0"`
	UserID        *int64           `json:"user_id" validate:"omitempty,gt=0"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method" validate:"omitempty,notblank,max=50"`
	PaymentDate   *string          `json:"payment_date"`
	Status        *string          `json:"status" validate:"omitempty,notblank,max=50"`

	paidAt *time.Time
}

func (r *updatePaymentRequest) Validate() validation.Errors {
	errs := validation.Struct(r)
	validation.OptionalPositive(errs, "amount", r.Amount)
	r.paidAt = timeField(errs, "payment_date", r.PaymentDate)
	return errs
}

type paymentResponse struct {
	ID            int64           `json:"id"`
	RentalID      int64           `json:"rental_id"`
	UserID        int64           `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toPaymentResponse(p models.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		RentalID:      p.RentalID,
		UserID:        p.UserID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   p.PaymentDate,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}

func (h *HandlerSet) CreatePayment(c *gin.Context) {
	var req paymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment := models.Payment{
		RentalID:      req.RentalID,
		UserID:        req.UserID,
		Amount:        *req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   req.paidAt,
		Status:        strings.TrimSpace(req.Status),
	}
	if req.created != nil {
		payment.CreatedAt = *req.created
	}

	created, err := h.svc.Payments.Create(c.Request.Context(), payment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPaymentResponse(created))
}

func (h *HandlerSet) ListPayments(c *gin.Context) {
	q := newQuery(c)
	f := models.PaymentFilter{
		UserID:        q.optInt64("user_id"),
		RentalID:      q.optInt64("rental_id"),
		Status:        q.optString("status"),
		PaymentMethod: q.optString("payment_method"),
		Amount:        filter.Range[decimal.Decimal]{From: q.optDecimal("min_amount"), To: q.optDecimal("max_amount")},
		PaymentDate:   filter.Range[time.Time]{From: q.optTime("payment_date_from"), To: q.optTime("payment_date_to")},
	}
	if !q.ok() {
		return
	}
	h.listPayments(c, f)
}

func (h *HandlerSet) ListPaymentsByUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	h.listPayments(c, models.PaymentFilter{UserID: &id})
}

func (h *HandlerSet) ListPaymentsByRental(c *gin.Context) {
	id, ok := pathID(c, "rental_id")
	if !ok {
		return
	}
	h.listPayments(c, models.PaymentFilter{RentalID: &id})
}

func (h *HandlerSet) ListPaymentsByStatus(c *gin.Context) {
	status := strings.TrimSpace(c.Param("status"))
	if status == "" {
		response.Error(c, http.StatusBadRequest, "Invalid value for path parameter 'status'")
		return
	}
	h.listPayments(c, models.PaymentFilter{Status: status})
}

func (h *HandlerSet) listPayments(c *gin.Context, f models.PaymentFilter) {
	payments, err := h.svc.Payments.List(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HandlerSet) GetPayment(c *gin.Context) {
	id, ok := pathID(c, "payment_id")
	if !ok {
		return
	}
	p, err := h.svc.Payments.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(p))
}

func (h *HandlerSet) UpdatePayment(c *gin.Context) {
	id, ok := pathID(c, "payment_id")
	if !ok {
		return
	}
	var req updatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.Payments.Update(c.Request.Context(), id, service.UpdatePaymentInput{
		RentalID:      req.RentalID,
		UserID:        req.UserID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   req.paidAt,
		Status:        req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(p))
}

func (h *HandlerSet) DeletePayment(c *gin.Context) {
	id, ok := pathID(c, "payment_id")
	if !ok {
		return
	}
	if err := h.svc.Payments.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
