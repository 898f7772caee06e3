package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carrental/internal/models"
	"carrental/internal/service"
	"carrental/internal/validation"
)

type locationRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=255"`
	Address string `json:"address" validate:"required,notblank,max=255"`
}

func (r *locationRequest) Validate() validation.Errors {
	return validation.Struct(r)
}

type updateLocationRequest struct {
	Name    *string `json:"name" validate:"omitempty,notblank,max=255"`
	Address *string `json:"address" validate:"omitempty,notblank,max=255"`
}

func (r *updateLocationRequest) Validate() validation.Errors {
	return validation.Struct(r)
}

type locationResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func toLocationResponse(l models.Location) locationResponse {
	return locationResponse{ID: l.ID, Name: l.Name, Address: l.Address}
}

func (h *HandlerSet) CreateLocation(c *gin.Context) {
	var req locationRequest
	if !bindJSON(c, &req) {
		return
	}
	loc, err := h.svc.Locations.Create(c.Request.Context(), models.Location{Name: req.Name, Address: req.Address})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toLocationResponse(loc))
}

func (h *HandlerSet) ListLocations(c *gin.Context) {
	locs, err := h.svc.Locations.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]locationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, toLocationResponse(l))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HandlerSet) GetLocation(c *gin.Context) {
	id, ok := pathID(c, "location_id")
	if !ok {
		return
	}
	loc, err := h.svc.Locations.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLocationResponse(loc))
}

func (h *HandlerSet) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c, "location_id")
	if !ok {
		return
	}
	var req updateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	loc, err := h.svc.Locations.Update(c.Request.Context(), id, service.UpdateLocationInput{Name: req.Name, Address: req.Address})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLocationResponse(loc))
}

func (h *HandlerSet) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c, "location_id")
	if !ok {
		return
	}
	if err := h.svc.Locations.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
