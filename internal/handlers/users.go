package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carrental/internal/service"
	"carrental/internal/validation"
)

type createUserRequest struct {
	FullName    string  `json:"full_name" validate:"required,notblank,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=8,max=72,bcrypt"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
	RoleID      *int64  `json:"role_id" validate:"omitempty,gt=0"`
}

func (r *createUserRequest) Validate() validation.Errors {
	r.Email = strings.TrimSpace(r.Email)
	return validation.Struct(r)
}

type updateUserRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,notblank,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=72,bcrypt"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
}

func (r *updateUserRequest) Validate() validation.Errors {
	return validation.Struct(r)
}

type changeRoleRequest struct {
	RoleID int64 `json:"role_id" validate:"required,gt=0"`
}

func (r *changeRoleRequest) Validate() validation.Errors {
	return validation.Struct(r)
}

func (h *HandlerSet) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.svc.Users.Create(c.Request.Context(), service.CreateUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		RoleID:      req.RoleID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

func (h *HandlerSet) ListUsers(c *gin.Context) {
	profiles, err := h.svc.Users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HandlerSet) GetUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	profile, err := h.svc.Users.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *HandlerSet) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.svc.Users.Update(c.Request.Context(), id, service.UpdateUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *HandlerSet) ChangeUserRole(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req changeRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.svc.Users.ChangeRole(c.Request.Context(), id, req.RoleID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *HandlerSet) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.Users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
