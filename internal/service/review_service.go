package service

import (
	"context"
	"fmt"
	"time"

	"carrental/internal/models"
)

type UpdateReviewInput struct {
	RentalID *int64
	UserID   *int64
	Rating   *int
	Comment  *string
}

type ReviewService struct {
	reviews ReviewStore
	rentals RentalStore
	users   UserStore
	now     func() time.Time
}

func NewReviewService(reviews ReviewStore, rentals RentalStore, users UserStore) *ReviewService {
	return &ReviewService{reviews: reviews, rentals: rentals, users: users, now: time.Now}
}

func (s *ReviewService) Create(ctx context.Context, rv models.Review) (models.Review, error) {
	if err := checkRating(rv.Rating); err != nil {
		return models.Review{}, err
	}
	if err := s.checkRefs(ctx, rv.RentalID, rv.UserID); err != nil {
		return models.Review{}, err
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = s.now().UTC()
	}

	created, err := s.reviews.Create(ctx, rv)
	return created, translate(err, "Review", nil, "")
}

func (s *ReviewService) Get(ctx context.Context, id int64) (models.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	return rv, translate(err, "Review", id, "")
}

func (s *ReviewService) List(ctx context.Context, f models.ReviewFilter) ([]models.Review, error) {
	if f.IsZero() {
		return s.reviews.List(ctx)
	}
	return s.reviews.Find(ctx, f)
}

func (s *ReviewService) Update(ctx context.Context, id int64, input UpdateReviewInput) (models.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return models.Review{}, translate(err, "Review", id, "")
	}

	rentalID, userID := rv.RentalID, rv.UserID
	if input.RentalID != nil {
		rentalID = *input.RentalID
	}
	if input.UserID != nil {
		userID = *input.UserID
	}
	if rentalID != rv.RentalID || userID != rv.UserID {
		if err := s.checkRefs(ctx, rentalID, userID); err != nil {
			return models.Review{}, err
		}
	}
	rv.RentalID, rv.UserID = rentalID, userID

	if input.Rating != nil {
		if err := checkRating(*input.Rating); err != nil {
			return models.Review{}, err
		}
		rv.Rating = *input.Rating
	}
	if input.Comment != nil {
		rv.Comment = input.Comment
	}

	updated, err := s.reviews.Update(ctx, rv)
	return updated, translate(err, "Review", id, "")
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	return translate(s.reviews.Delete(ctx, id), "Review", id, "")
}

func (s *ReviewService) checkRefs(ctx context.Context, rentalID, userID int64) error {
	if _, err := s.rentals.GetByID(ctx, rentalID); err != nil {
		return translate(err, "Rental", rentalID, "")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return translate(err, "User", userID, "")
	}
	return nil
}

func checkRating(r int) error {
	if r < models.MinRating || r > models.MaxRating {
		return invalid("rating", fmt.Sprintf("Rating must be between %d and %d", models.MinRating, models.MaxRating))
	}
	return nil
}
