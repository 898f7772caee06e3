package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carrental/internal/response"
	"carrental/internal/security"
	"carrental/internal/service"
	"carrental/internal/validation"
)

type registerRequest struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	FullName    string  `json:"fullName" validate:"required,notblank,min=2,max=100"`
	Password    string  `json:"password" validate:"required,min=8,max=72,bcrypt"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,phone"`
}

func (r *registerRequest) Validate() validation.Errors {
	r.Email = strings.TrimSpace(r.Email)
	r.FullName = strings.TrimSpace(r.FullName)
	return validation.Struct(r)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *loginRequest) Validate() validation.Errors {
	r.Email = strings.TrimSpace(r.Email)
	return validation.Struct(r)
}

type profileResponse struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Role        string  `json:"role"`
}

func toProfileResponse(p service.UserProfile) profileResponse {
	return profileResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Role:        p.Role,
	}
}

type loginResponse struct {
	Token string          `json:"token"`
	User  profileResponse `json:"user"`
}

func (h *HandlerSet) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.svc.Auth.Register(c.Request.Context(), service.RegisterInput{
		Email:       req.Email,
		FullName:    req.FullName,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, fmt.Sprintf("%s registered successfully!", user.Email))
}

func (h *HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.svc.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: result.Token, User: toProfileResponse(result.User)})
}

// Me returns the profile behind the request's identity.
func (h *HandlerSet) Me(c *gin.Context) {
	identity, ok := security.IdentityFrom(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	profile, err := h.svc.Auth.Profile(c.Request.Context(), identity.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}
