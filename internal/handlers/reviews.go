package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carrental/internal/filter"
	"carrental/internal/models"
	"carrental/internal/service"
	"carrental/internal/validation"
)

type reviewRequest struct {
	RentalID  int64   `json:"rental_id" validate:"required,gt=0"`
	UserID    int64   `json:"user_id" validate:"required,gt=0"`
	Rating    *int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   *string `json:"comment" validate:"omitempty,max=1000"`
	CreatedAt *string `json:"created_at"`

	created *time.Time
}

func (r *reviewRequest) Validate() validation.Errors {
	errs := validation.Struct(r)
	r.created = timeField(errs, "created_at", r.CreatedAt)
	return errs
}

type updateReviewRequest struct {
	RentalID *int64  `json:"rental_id" validate:"omitempty,gt=0"`
	UserID   *int64  `json:"user_id" validate:"omitempty,gt=0"`
	Rating   *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment  *string `json:"comment" validate:"omitempty,max=1000"`
}

func (r *updateReviewRequest) Validate() validation.Errors {
	return validation.Struct(r)
}

type reviewResponse struct {
	ID        int64     `json:"id"`
	RentalID  int64     `json:"rental_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewResponse(rv models.Review) reviewResponse {
	return reviewResponse{
		ID:        rv.ID,
		RentalID:  rv.RentalID,
		UserID:    rv.UserID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
}

func (h *HandlerSet) CreateReview(c *gin.Context) {
	var req reviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review := models.Review{
		RentalID: req.RentalID,
		UserID:   req.UserID,
		Rating:   *req.Rating,
		Comment:  req.Comment,
	}
	if req.created != nil {
		review.CreatedAt = *req.created
	}

	created, err := h.svc.Reviews.Create(c.Request.Context(), review)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(created))
}

func (h *HandlerSet) ListReviews(c *gin.Context) {
	q := newQuery(c)
	f := models.ReviewFilter{
		UserID:    q.optInt64("user_id"),
		RentalID:  q.optInt64("rental_id"),
		Rating:    filter.Range[int]{From: q.optInt("min_rating"), To: q.optInt("max_rating")},
		CreatedAt: filter.Range[time.Time]{From: q.optTime("created_at_from"), To: q.optTime("created_at_to")},
	}
	if !q.ok() {
		return
	}
	h.listReviews(c, f)
}

func (h *HandlerSet) ListReviewsByUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	h.listReviews(c, models.ReviewFilter{UserID: &id})
}

func (h *HandlerSet) ListReviewsByRental(c *gin.Context) {
	id, ok := pathID(c, "rental_id")
	if !ok {
		return
	}
	h.listReviews(c, models.ReviewFilter{RentalID: &id})
}

func (h *HandlerSet) listReviews(c *gin.Context, f models.ReviewFilter) {
	reviews, err := h.svc.Reviews.List(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]reviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, toReviewResponse(rv))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HandlerSet) GetReview(c *gin.Context) {
	id, ok := pathID(c, "review_id")
	if !ok {
		return
	}
	rv, err := h.svc.Reviews.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(rv))
}

func (h *HandlerSet) UpdateReview(c *gin.Context) {
	id, ok := pathID(c, "review_id")
	if !ok {
		return
	}
	var req updateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	rv, err := h.svc.Reviews.Update(c.Request.Context(), id, service.UpdateReviewInput{
		RentalID: req.RentalID,
		UserID:   req.UserID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(rv))
}

func (h *HandlerSet) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "review_id")
	if !ok {
		return
	}
	if err := h.svc.Reviews.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
