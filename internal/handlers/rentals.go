package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carrental/internal/filter"
	"carrental/internal/models"
	"carrental/internal/service"
	"carrental/internal/validation"
)

type rentalRequest struct {
	UserID         int64            `json:"user_id" validate:"required,gt=0"`
	VehicleID      int64            `json:"vehicle_id" validate:"required,gt=0"`
	StartTime      *string          `json:"start_time"`
	EndTime        *string          `json:"end_time"`
	TotalPrice     *decimal.Decimal `json:"total_price"`
	Status         string           `json:"status" validate:"required,notblank,max=50"`
	PickupLocation *string          `json:"pickup_location" validate:"omitempty,max=255"`
	CreatedAt      *string          `json:"created_at"`

	start, end time.Time
	created    *time.Time
}

func (r *rentalRequest) Validate() validation.Errors {
	errs := validation.Struct(r)
	r.start = requiredTime(errs, "start_time", r.StartTime)
	r.end = requiredTime(errs, "end_time", r.EndTime)
	r.created = timeField(errs, "created_at", r.CreatedAt)
	validation.RequirePositive(errs, "total_price", r.TotalPrice)
	return errs
}

type updateRentalRequest struct {
	UserID         *int64           `json:"user_id" validate:"omitempty,gt=0"`
	VehicleID      *int64           `json:"vehicle_id" validate:"omitempty,gt=0"`
	StartTime      *string          `json:"start_time"`
	EndTime        *string          `json:"end_time"`
	TotalPrice     *decimal.Decimal `json:"total_price"`
	Status         *string          `json:"status" validate:"omitempty,notblank,max=50"`
	PickupLocation *string          `json:"pickup_location" validate:"omitempty,max=255"`

	start, end *time.Time
}

func (r *updateRentalRequest) Validate() validation.Errors {
	errs := validation.Struct(r)
	r.start = timeField(errs, "start_time", r.StartTime)
	r.end = timeField(errs, "end_time", r.EndTime)
	validation.OptionalPositive(errs, "total_price", r.TotalPrice)
	return errs
}

type rentalResponse struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	VehicleID      int64           `json:"vehicle_id"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        time.Time       `json:"end_time"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Status         string          `json:"status"`
	PickupLocation *string         `json:"pickup_location"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toRentalResponse(r models.Rental) rentalResponse {
	return rentalResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		VehicleID:      r.VehicleID,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		TotalPrice:     r.TotalPrice,
		Status:         r.Status,
		PickupLocation: r.PickupLocation,
		CreatedAt:      r.CreatedAt,
	}
}

func toRentalResponses(rentals []models.Rental) []rentalResponse {
	out := make([]rentalResponse, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, toRentalResponse(r))
	}
	return out
}

func (h *HandlerSet) CreateRental(c *gin.Context) {
	var req rentalRequest
	if !bindJSON(c, &req) {
		return
	}

	rental := models.Rental{
		UserID:         req.UserID,
		VehicleID:      req.VehicleID,
		StartTime:      req.start,
		EndTime:        req.end,
		TotalPrice:     *req.TotalPrice,
		Status:         req.Status,
		PickupLocation: req.PickupLocation,
	}
	if req.created != nil {
		rental.CreatedAt = *req.created
	}

	created, err := h.svc.Rentals.Create(c.Request.Context(), rental)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRentalResponse(created))
}

// ListRentals answers GET /rentals. Every query parameter is optional; with
// none present the whole collection is returned.
func (h *HandlerSet) ListRentals(c *gin.Context) {
	q := newQuery(c)
	f := models.RentalFilter{
		UserID:    q.optInt64("user_id"),
		VehicleID: q.optInt64("vehicle_id"),
		Status:    q.optString("status"),
		StartTime: filter.Range[time.Time]{From: q.optTime("start_time_from"), To: q.optTime("start_time_to")},
		EndTime:   filter.Range[time.Time]{From: q.optTime("end_time_from"), To: q.optTime("end_time_to")},
	}
	if !q.ok() {
		return
	}

	rentals, err := h.svc.Rentals.List(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRentalResponses(rentals))
}

func (h *HandlerSet) GetRental(c *gin.Context) {
	id, ok := pathID(c, "rental_id")
	if !ok {
		return
	}
	r, err := h.svc.Rentals.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRentalResponse(r))
}

func (h *HandlerSet) UpdateRental(c *gin.Context) {
	id, ok := pathID(c, "rental_id")
	if !ok {
		return
	}
	var req updateRentalRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.svc.Rentals.Update(c.Request.Context(), id, service.UpdateRentalInput{
		UserID:         req.UserID,
		VehicleID:      req.VehicleID,
		StartTime:      req.start,
		EndTime:        req.end,
		TotalPrice:     req.TotalPrice,
		Status:         req.Status,
		PickupLocation: req.PickupLocation,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRentalResponse(r))
}

func (h *HandlerSet) DeleteRental(c *gin.Context) {
	id, ok := pathID(c, "rental_id")
	if !ok {
		return
	}
	if err := h.svc.Rentals.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
