package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carrental/internal/media"
	"carrental/internal/models"
	"carrental/internal/response"
	"carrental/internal/service"
	"carrental/internal/validation"
)

type vehicleRequest struct {
	Name          string           `json:"name" validate:"required,notblank,max=255"`
	Brand         string           `json:"brand" validate:"required,notblank,max=255"`
	Type          string           `json:"type" validate:"required,notblank,max=255"`
	LicensePlate  string           `json:"license_plate" validate:"required,notblank,max=255"`
	Status        string           `json:"status" validate:"required,notblank,max=255"`
	LocationID    int64            `json:"location_id" validate:"required,gt=0"`
	PricePerDay   *decimal.Decimal `json:"price_per_day"`
	PricePerMonth *decimal.Decimal `json:"price_per_month"`
	PricePerYear  *decimal.Decimal `json:"price_per_year"`
}

func (r *vehicleRequest) Validate() validation.Errors {
	errs := validation.Struct(r)
	validation.OptionalPositive(errs, "price_per_day", r.PricePerDay)
	validation.OptionalPositive(errs, "price_per_month", r.PricePerMonth)
	validation.OptionalPositive(errs, "price_per_year", r.PricePerYear)
	return errs
}

type updateVehicleRequest struct {
	Name          *string          `json:"name" validate:"omitempty,notblank,max=255"`
	Brand         *string          `json:"brand" validate:"omitempty,notblank,max=255"`
	Type          *string          `json:"type" validate:"omitempty,notblank,max=255"`
	LicensePlate  *string          `json:"license_plate" validate:"omitempty,notblank,max=255"`
	Status        *string          `json:"status" validate:"omitempty,notblank,max=255"`
	LocationID    *int64           `json:"location_id" validate:"omitempty,gt=0"`
	PricePerDay   *decimal.Decimal `json:"price_per_day"`
	PricePerMonth *decimal.Decimal `json:"price_per_month"`
	PricePerYear  *decimal.Decimal `json:"price_per_year"`
}

func (r *updateVehicleRequest) Validate() validation.Errors {
	errs := validation.Struct(r)
	validation.OptionalPositive(errs, "price_per_day", r.PricePerDay)
	validation.OptionalPositive(errs, "price_per_month", r.PricePerMonth)
	validation.OptionalPositive(errs, "price_per_year", r.PricePerYear)
	return errs
}

type vehicleResponse struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Brand         string              `json:"brand"`
	Type          string              `json:"type"`
	LicensePlate  string              `json:"license_plate"`
	Status        string              `json:"status"`
	LocationID    int64               `json:"location_id"`
	PricePerDay   decimal.NullDecimal `json:"price_per_day"`
	PricePerMonth decimal.NullDecimal `json:"price_per_month"`
	PricePerYear  decimal.NullDecimal `json:"price_per_year"`
	Image         string              `json:"image"`
}

func toVehicleResponse(v models.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:            v.ID,
		Name:          v.Name,
		Brand:         v.Brand,
		Type:          v.Type,
		LicensePlate:  v.LicensePlate,
		Status:        v.Status,
		LocationID:    v.LocationID,
		PricePerDay:   v.PricePerDay,
		PricePerMonth: v.PricePerMonth,
		PricePerYear:  v.PricePerYear,
		Image:         v.Image,
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func (h *HandlerSet) CreateVehicle(c *gin.Context) {
	var req vehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.svc.Vehicles.Create(c.Request.Context(), models.Vehicle{
		Name:          req.Name,
		Brand:         req.Brand,
		Type:          req.Type,
		LicensePlate:  req.LicensePlate,
		Status:        req.Status,
		LocationID:    req.LocationID,
		PricePerDay:   nullDecimal(req.PricePerDay),
		PricePerMonth: nullDecimal(req.PricePerMonth),
		PricePerYear:  nullDecimal(req.PricePerYear),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVehicleResponse(v))
}

func (h *HandlerSet) ListVehicles(c *gin.Context) {
	vehicles, err := h.svc.Vehicles.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, toVehicleResponse(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HandlerSet) GetVehicle(c *gin.Context) {
	id, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	v, err := h.svc.Vehicles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(v))
}

func (h *HandlerSet) UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	var req updateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.svc.Vehicles.Update(c.Request.Context(), id, service.UpdateVehicleInput{
		Name:          req.Name,
		Brand:         req.Brand,
		Type:          req.Type,
		LicensePlate:  req.LicensePlate,
		Status:        req.Status,
		LocationID:    req.LocationID,
		PricePerDay:   req.PricePerDay,
		PricePerMonth: req.PricePerMonth,
		PricePerYear:  req.PricePerYear,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(v))
}

func (h *HandlerSet) DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	if err := h.svc.Vehicles.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadVehicleImage accepts a multipart "file" part and stores it as the vehicle picture.
func (h *HandlerSet) UploadVehicleImage(c *gin.Context) {
	id, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxVehicleImageBytes+1<<20)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Validation(c, validation.Errors{"file": validation.Message("file", "required", "")})
		return
	}
	defer file.Close()

	v, err := h.svc.Vehicles.UploadImage(c.Request.Context(), id, service.VehicleImageInput{
		Data:         file,
		DeclaredType: media.DeclaredType(header.Header),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(v))
}
