package handlers

import (
	"context"
	"io"

	"carrental/internal/models"
	"carrental/internal/security"
	"carrental/internal/service"
)

type stubResolver map[string]security.Identity

func (s stubResolver) ResolveToken(_ context.Context, token string) (security.Identity, error) {
	id, ok := s[token]
	if !ok {
		return security.Identity{}, security.ErrInvalidToken
	}
	return id, nil
}

type stubAuth struct {
	registered   models.User
	registerErr  error
	lastRegister service.RegisterInput

	login    service.LoginResult
	loginErr error

	profile     service.UserProfile
	profileErr  error
	lastProfile string
}

func (s *stubAuth) Register(_ context.Context, in service.RegisterInput) (models.User, error) {
	s.lastRegister = in
	return s.registered, s.registerErr
}

func (s *stubAuth) Login(context.Context, string, string) (service.LoginResult, error) {
	return s.login, s.loginErr
}

func (s *stubAuth) Profile(_ context.Context, email string) (service.UserProfile, error) {
	s.lastProfile = email
	return s.profile, s.profileErr
}

type stubUsers struct {
	profile      service.UserProfile
	err          error
	lastRoleID   int64
	lastUpdate   service.UpdateUserInput
	deleteCalled bool
}

func (s *stubUsers) Create(context.Context, service.CreateUserInput) (service.UserProfile, error) {
	return s.profile, s.err
}

func (s *stubUsers) Get(context.Context, int64) (service.UserProfile, error) {
	return s.profile, s.err
}

func (s *stubUsers) List(context.Context) ([]service.UserProfile, error) {
	return []service.UserProfile{s.profile}, s.err
}

func (s *stubUsers) Update(_ context.Context, _ int64, in service.UpdateUserInput) (service.UserProfile, error) {
	s.lastUpdate = in
	return s.profile, s.err
}

func (s *stubUsers) ChangeRole(_ context.Context, _ int64, roleID int64) (service.UserProfile, error) {
	s.lastRoleID = roleID
	return s.profile, s.err
}

func (s *stubUsers) Delete(context.Context, int64) error {
	s.deleteCalled = true
	return s.err
}

type stubLocations struct {
	err error
}

func (s *stubLocations) Create(_ context.Context, l models.Location) (models.Location, error) {
	l.ID = 1
	return l, s.err
}

func (s *stubLocations) Get(_ context.Context, id int64) (models.Location, error) {
	return models.Location{ID: id}, s.err
}

func (s *stubLocations) List(context.Context) ([]models.Location, error) {
	return nil, s.err
}

func (s *stubLocations) Update(_ context.Context, id int64, _ service.UpdateLocationInput) (models.Location, error) {
	return models.Location{ID: id}, s.err
}

func (s *stubLocations) Delete(context.Context, int64) error {
	return s.err
}

type stubVehicles struct {
	vehicle      models.Vehicle
	err          error
	uploadedData []byte
	uploadedType string
}

func (s *stubVehicles) Create(_ context.Context, v models.Vehicle) (models.Vehicle, error) {
	v.ID = 1
	return v, s.err
}

func (s *stubVehicles) Get(context.Context, int64) (models.Vehicle, error) {
	return s.vehicle, s.err
}

func (s *stubVehicles) List(context.Context) ([]models.Vehicle, error) {
	return []models.Vehicle{s.vehicle}, s.err
}

func (s *stubVehicles) Update(context.Context, int64, service.UpdateVehicleInput) (models.Vehicle, error) {
	return s.vehicle, s.err
}

func (s *stubVehicles) Delete(context.Context, int64) error {
	return s.err
}

func (s *stubVehicles) UploadImage(_ context.Context, _ int64, in service.VehicleImageInput) (models.Vehicle, error) {
	data, err := io.ReadAll(in.Data)
	if err != nil {
		return models.Vehicle{}, err
	}
	s.uploadedData = data
	s.uploadedType = in.DeclaredType
	return s.vehicle, s.err
}

type stubRentals struct {
	rentals    []models.Rental
	err        error
	lastFilter *models.RentalFilter
	lastCreate models.Rental
}

func (s *stubRentals) Create(_ context.Context, r models.Rental) (models.Rental, error) {
	s.lastCreate = r
	r.ID = 10
	return r, s.err
}

func (s *stubRentals) Get(context.Context, int64) (models.Rental, error) {
	if len(s.rentals) == 0 {
		return models.Rental{}, s.err
	}
	return s.rentals[0], s.err
}

func (s *stubRentals) List(_ context.Context, f models.RentalFilter) ([]models.Rental, error) {
	s.lastFilter = &f
	return s.rentals, s.err
}

func (s *stubRentals) Update(context.Context, int64, service.UpdateRentalInput) (models.Rental, error) {
	return models.Rental{}, s.err
}

func (s *stubRentals) Delete(context.Context, int64) error {
	return s.err
}

type stubPayments struct {
	payments   []models.Payment
	err        error
	lastFilter *models.PaymentFilter
	lastCreate models.Payment
}

func (s *stubPayments) Create(_ context.Context, p models.Payment) (models.Payment, error) {
	s.lastCreate = p
	return p, s.err
}

func (s *stubPayments) Get(context.Context, int64) (models.Payment, error) {
	return models.Payment{}, s.err
}

func (s *stubPayments) List(_ context.Context, f models.PaymentFilter) ([]models.Payment, error) {
	s.lastFilter = &f
	return s.payments, s.err
}

func (s *stubPayments) Update(context.Context, int64, service.UpdatePaymentInput) (models.Payment, error) {
	return models.Payment{}, s.err
}

func (s *stubPayments) Delete(context.Context, int64) error {
	return s.err
}

type stubReviews struct {
	reviews    []models.Review
	err        error
	lastFilter *models.ReviewFilter
}

func (s *stubReviews) Create(_ context.Context, rv models.Review) (models.Review, error) {
	return rv, s.err
}

func (s *stubReviews) Get(context.Context, int64) (models.Review, error) {
	return models.Review{}, s.err
}

func (s *stubReviews) List(_ context.Context, f models.ReviewFilter) ([]models.Review, error) {
	s.lastFilter = &f
	return s.reviews, s.err
}

func (s *stubReviews) Update(context.Context, int64, service.UpdateReviewInput) (models.Review, error) {
	return models.Review{}, s.err
}

func (s *stubReviews) Delete(context.Context, int64) error {
	return s.err
}
