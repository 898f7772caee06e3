package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carrental/internal/models"
	"carrental/internal/validation"
)

type roleRequest struct {
	RoleName string `json:"role_name" validate:"required,notblank,min=2,max=50"`
}

func (r *roleRequest) Validate() validation.Errors {
	r.RoleName = strings.TrimSpace(r.RoleName)
	return validation.Struct(r)
}

type roleResponse struct {
	ID       int64  `json:"id"`
	RoleName string `json:"role_name"`
}

func toRoleResponse(r models.Role) roleResponse {
	return roleResponse{ID: r.ID, RoleName: r.Name}
}

func (h *HandlerSet) CreateRole(c *gin.Context) {
	var req roleRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.svc.Roles.Create(c.Request.Context(), req.RoleName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRoleResponse(role))
}

func (h *HandlerSet) ListRoles(c *gin.Context) {
	roles, err := h.svc.Roles.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HandlerSet) GetRole(c *gin.Context) {
	id, ok := pathID(c, "role_id")
	if !ok {
		return
	}
	role, err := h.svc.Roles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoleResponse(role))
}

func (h *HandlerSet) UpdateRole(c *gin.Context) {
	id, ok := pathID(c, "role_id")
	if !ok {
		return
	}
	var req roleRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.svc.Roles.Update(c.Request.Context(), id, req.RoleName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoleResponse(role))
}

func (h *HandlerSet) DeleteRole(c *gin.Context) {
	id, ok := pathID(c, "role_id")
	if !ok {
		return
	}
	if err := h.svc.Roles.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
