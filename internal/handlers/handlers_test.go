package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/config"
	"carrental/internal/middleware"
	"carrental/internal/models"
	"carrental/internal/security"
	"carrental/internal/service"
)

var testIdentities = stubResolver{
	"user-token":  {UserID: 1, Email: "ana@example.com", Role: models.RoleUser},
	"admin-token": {UserID: 2, Email: "root@example.com", Role: models.RoleAdmin},
}

func newRouter(t *testing.T, svc Services, checks ...HealthCheck) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	public := security.NewPublicRoutes(config.DefaultPublicPaths)

	r := gin.New()
	r.Use(middleware.Authenticate(testIdentities, zerolog.Nop()), middleware.Gate(public))
	NewHandlerSet(zerolog.Nop(), "test", svc, public, checks...).Mount(r)
	return r
}

func call(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRegisterCreated(t *testing.T) {
	auth := &stubAuth{registered: models.User{ID: 1, Email: "ana@example.com"}}
	r := newRouter(t, Services{Auth: auth})

	rec := call(r, http.MethodPost, "/register", "", map[string]any{
		"email": "ana@example.com", "fullName": "Ana Lima", "password": "password1", "phoneNumber": "5511999990000",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"message": "ana@example.com registered successfully!"}, jsonBody(t, rec))
	assert.Equal(t, "Ana Lima", auth.lastRegister.FullName)
	require.NotNil(t, auth.lastRegister.PhoneNumber)
	assert.Equal(t, "5511999990000", *auth.lastRegister.PhoneNumber)
}

func TestRegisterValidation(t *testing.T) {
	r := newRouter(t, Services{Auth: &stubAuth{}})

	rec := call(r, http.MethodPost, "/register", "", map[string]any{"email": "nope", "password": "short"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := jsonBody(t, rec)
	assert.Equal(t, "BAD_REQUEST", body["status"])
	fields := body["errors"].(map[string]any)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "password")

	rec = call(r, http.MethodPost, "/register", "", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed JSON request", jsonBody(t, rec)["errorMessage"])
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	auth := &stubAuth{registerErr: &service.ConflictError{Message: "User with email ana@example.com already exists"}}
	r := newRouter(t, Services{Auth: auth})

	rec := call(r, http.MethodPost, "/register", "", map[string]any{
		"email": "ana@example.com", "fullName": "Ana Lima", "password": "password1",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, "CONFLICT", body["status"])
	assert.Equal(t, "User with email ana@example.com already exists", body["errorMessage"])
}

func TestLoginSuccessShape(t *testing.T) {
	phone := "5511999990000"
	auth := &stubAuth{login: service.LoginResult{
		Token: "signed.jwt.token",
		User:  service.UserProfile{ID: 4, FullName: "Ana Lima", Email: "ana@example.com", PhoneNumber: &phone, Role: models.RoleUser},
	}}
	r := newRouter(t, Services{Auth: auth})

	rec := call(r, http.MethodPost, "/login", "", map[string]any{"email": "ana@example.com", "password": "password1"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := jsonBody(t, rec)
	assert.Equal(t, "signed.jwt.token", body["token"])
	assert.Equal(t, map[string]any{
		"id": float64(4), "full_name": "Ana Lima", "email": "ana@example.com",
		"phone_number": "5511999990000", "role": models.RoleUser,
	}, body["user"])
}

func TestLoginFailureIsUniform(t *testing.T) {
	r := newRouter(t, Services{Auth: &stubAuth{loginErr: service.ErrInvalidCredentials}})

	unknown := call(r, http.MethodPost, "/login", "", map[string]any{"email": "ghost@example.com", "password": "x"})
	wrong := call(r, http.MethodPost, "/login", "", map[string]any{"email": "ana@example.com", "password": "y"})

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrong.Code)
	a, b := jsonBody(t, unknown), jsonBody(t, wrong)
	delete(a, "timestamp")
	delete(b, "timestamp")
	assert.Equal(t, a, b)
	assert.Equal(t, "Invalid email or password.", a["errorMessage"])
}

func TestProfileMe(t *testing.T) {
	auth := &stubAuth{profile: service.UserProfile{ID: 1, Email: "ana@example.com", Role: models.RoleUser}}
	r := newRouter(t, Services{Auth: auth})

	rec := call(r, http.MethodGet, "/profile/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(r, http.MethodGet, "/profile/me", "user-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana@example.com", auth.lastProfile)
	assert.Equal(t, "ana@example.com", jsonBody(t, rec)["email"])
}

func TestChangeRoleRequiresAdmin(t *testing.T) {
	users := &stubUsers{profile: service.UserProfile{ID: 5, Role: models.RoleAdmin}}
	r := newRouter(t, Services{Users: users})

	rec := call(r, http.MethodPut, "/users/5/role", "", map[string]any{"role_id": 2})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(r, http.MethodPut, "/users/5/role", "user-token", map[string]any{"role_id": 2})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, users.lastRoleID)

	rec = call(r, http.MethodPut, "/users/5/role", "admin-token", map[string]any{"role_id": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), users.lastRoleID)
}

func TestUsersRequireToken(t *testing.T) {
	users := &stubUsers{}
	r := newRouter(t, Services{Users: users})

	rec := call(r, http.MethodDelete, "/users/3", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, users.deleteCalled)

	rec = call(r, http.MethodDelete, "/users/3", "user-token", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, users.deleteCalled)
}

func TestUpdateUserPartial(t *testing.T) {
	users := &stubUsers{profile: service.UserProfile{ID: 3}}
	r := newRouter(t, Services{Users: users})

	rec := call(r, http.MethodPut, "/users/3", "user-token", map[string]any{"full_name": "New Name"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, users.lastUpdate.FullName)
	assert.Equal(t, "New Name", *users.lastUpdate.FullName)
	assert.Nil(t, users.lastUpdate.Email)
	assert.Nil(t, users.lastUpdate.Password)

	rec = call(r, http.MethodPut, "/users/3", "user-token", map[string]any{"phone_number": "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRentalsWithoutParamsUsesEmptyFilter(t *testing.T) {
	rentals := &stubRentals{rentals: []models.Rental{{ID: 1, Status: models.RentalStatusActive, TotalPrice: decimal.RequireFromString("199.90")}}}
	r := newRouter(t, Services{Rentals: rentals})

	rec := call(r, http.MethodGet, "/rentals", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, rentals.lastFilter)
	assert.True(t, rentals.lastFilter.IsZero())

	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "199.9", out[0]["total_price"])
	assert.Equal(t, "ACTIVE", out[0]["status"])
}

func TestListRentalsParsesFilters(t *testing.T) {
	rentals := &stubRentals{}
	r := newRouter(t, Services{Rentals: rentals})

	rec := call(r, http.MethodGet,
		"/rentals?user_id=3&status=ACTIVE&start_time_from=2024-03-01T00:00:00&start_time_to=2024-03-31T23:59:59Z", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f := rentals.lastFilter
	require.NotNil(t, f)
	require.NotNil(t, f.UserID)
	assert.Equal(t, int64(3), *f.UserID)
	assert.Nil(t, f.VehicleID)
	assert.Equal(t, "ACTIVE", f.Status)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.StartTime.From)
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), *f.StartTime.To)
	assert.True(t, f.EndTime.IsZero())
}

func TestListRentalsRejectsMalformedParams(t *testing.T) {
	rentals := &stubRentals{}
	r := newRouter(t, Services{Rentals: rentals})

	rec := call(r, http.MethodGet, "/rentals?user_id=abc&end_time_to=yesterday", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	fields := jsonBody(t, rec)["errors"].(map[string]any)
	assert.Contains(t, fields, "user_id")
	assert.Contains(t, fields, "end_time_to")
	assert.Nil(t, rentals.lastFilter)
}

func TestCreateRental(t *testing.T) {
	rentals := &stubRentals{}
	r := newRouter(t, Services{Rentals: rentals})

	rec := call(r, http.MethodPost, "/rentals", "", map[string]any{
		"user_id": 1, "vehicle_id": 2, "start_time": "2024-03-02T10:00:00", "end_time": "2024-03-04T10:00:00",
		"total_price": 199.90, "status": "ACTIVE",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), rentals.lastCreate.StartTime)
	assert.True(t, rentals.lastCreate.TotalPrice.Equal(decimal.RequireFromString("199.9")))

	rec = call(r, http.MethodPost, "/rentals", "", map[string]any{
		"user_id": 1, "vehicle_id": 2, "start_time": "2024-03-02T10:00:00", "end_time": "soon",
		"total_price": 0, "status": "ACTIVE",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	fields := jsonBody(t, rec)["errors"].(map[string]any)
	assert.Contains(t, fields, "end_time")
	assert.Contains(t, fields, "total_price")
}

func TestListPaymentsFilters(t *testing.T) {
	payments := &stubPayments{}
	r := newRouter(t, Services{Payments: payments})

	rec := call(r, http.MethodGet, "/payments?min_amount=10.5&max_amount=100&payment_method=CARD&payment_date_from=2024-01-01T00:00:00", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	f := payments.lastFilter
	require.NotNil(t, f)
	assert.True(t, f.Amount.From.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, f.Amount.To.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "CARD", f.PaymentMethod)
	assert.NotNil(t, f.PaymentDate.From)
	assert.Nil(t, f.PaymentDate.To)

	rec = call(r, http.MethodGet, "/payments?min_amount=ten", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentShortcutRoutes(t *testing.T) {
	payments := &stubPayments{}
	r := newRouter(t, Services{Payments: payments})

	require.Equal(t, http.StatusOK, call(r, http.MethodGet, "/payments/user/7", "", nil).Code)
	assert.Equal(t, int64(7), *payments.lastFilter.UserID)

	require.Equal(t, http.StatusOK, call(r, http.MethodGet, "/payments/rental/8", "", nil).Code)
	assert.Equal(t, int64(8), *payments.lastFilter.RentalID)

	require.Equal(t, http.StatusOK, call(r, http.MethodGet, "/payments/status/PENDING", "", nil).Code)
	assert.Equal(t, "PENDING", payments.lastFilter.Status)
}

func TestCreatePaymentLeavesStatusToService(t *testing.T) {
	payments := &stubPayments{}
	r := newRouter(t, Services{Payments: payments})

	rec := call(r, http.MethodPost, "/payments", "", map[string]any{
		"rental_id": 1, "user_id": 1, "amount": "50.00", "payment_method": "CARD", "payment_date": "2024-03-02T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Empty(t, payments.lastCreate.Status)
	assert.True(t, payments.lastCreate.Amount.Equal(decimal.NewFromInt(50)))
}

func TestListReviewsRatingRange(t *testing.T) {
	reviews := &stubReviews{}
	r := newRouter(t, Services{Reviews: reviews})

	rec := call(r, http.MethodGet, "/reviews?min_rating=4&rental_id=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	f := reviews.lastFilter
	require.NotNil(t, f)
	assert.Equal(t, 4, *f.Rating.From)
	assert.Nil(t, f.Rating.To)
	assert.Equal(t, int64(2), *f.RentalID)

	require.Equal(t, http.StatusOK, call(r, http.MethodGet, "/reviews/user/9", "", nil).Code)
	assert.Equal(t, int64(9), *reviews.lastFilter.UserID)
}

func TestCreateReviewRatingValidation(t *testing.T) {
	r := newRouter(t, Services{Reviews: &stubReviews{}})

	rec := call(r, http.MethodPost, "/reviews", "", map[string]any{"rental_id": 1, "user_id": 1, "rating": 6})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, jsonBody(t, rec)["errors"], "rating")

	rec = call(r, http.MethodPost, "/reviews", "", map[string]any{"rental_id": 1, "user_id": 1, "rating": 5})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNotFoundMapping(t *testing.T) {
	locations := &stubLocations{err: &service.NotFoundError{Entity: "Location", ID: int64(9)}}
	r := newRouter(t, Services{Locations: locations})

	rec := call(r, http.MethodGet, "/locations/9", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, "Location not found with id: 9", body["errorMessage"])
	assert.Equal(t, "NOT_FOUND", body["status"])
	assert.NotEmpty(t, body["timestamp"])

	rec = call(r, http.MethodDelete, "/locations/9", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidPathID(t *testing.T) {
	r := newRouter(t, Services{Locations: &stubLocations{}})

	rec := call(r, http.MethodGet, "/locations/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid value for path parameter 'location_id'", jsonBody(t, rec)["errorMessage"])
}

func TestUnexpectedErrorIs500(t *testing.T) {
	r := newRouter(t, Services{Vehicles: &stubVehicles{err: errors.New("connection reset")}})

	rec := call(r, http.MethodGet, "/vehicles/1", "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["status"])
	assert.NotContains(t, body["errorMessage"], "connection reset")
}

func TestVehiclePricesValidated(t *testing.T) {
	r := newRouter(t, Services{Vehicles: &stubVehicles{}})

	rec := call(r, http.MethodPost, "/vehicles", "", map[string]any{
		"name": "Onix", "brand": "Chevrolet", "type": "Hatch", "license_plate": "QWE1A23",
		"status": "AVAILABLE", "location_id": 1, "price_per_day": -5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, jsonBody(t, rec)["errors"], "price_per_day")

	rec = call(r, http.MethodPost, "/vehicles", "", map[string]any{
		"name": "Onix", "brand": "Chevrolet", "type": "Hatch", "license_plate": "QWE1A23",
		"status": "AVAILABLE", "location_id": 1, "price_per_day": 150,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, "150", body["price_per_day"])
	assert.Nil(t, body["price_per_month"])
}

func TestUploadVehicleImage(t *testing.T) {
	vehicles := &stubVehicles{vehicle: models.Vehicle{ID: 1, Image: "http://objects.local/v.png"}}
	r := newRouter(t, Services{Vehicles: vehicles})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "car.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\nrest"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/vehicles/1/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "\x89PNG\r\n\x1a\nrest", string(vehicles.uploadedData))
	assert.Empty(t, vehicles.uploadedType)
	assert.Equal(t, "http://objects.local/v.png", jsonBody(t, rec)["image"])
}

func TestUploadVehicleImageDeclaredType(t *testing.T) {
	vehicles := &stubVehicles{}
	r := newRouter(t, Services{Vehicles: vehicles})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="car.jpg"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/vehicles/1/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", vehicles.uploadedType)
}

func TestUploadVehicleImageMissingFile(t *testing.T) {
	r := newRouter(t, Services{Vehicles: &stubVehicles{}})

	rec := call(r, http.MethodPost, "/vehicles/1/image", "", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, jsonBody(t, rec)["errors"], "file")
}

func TestAPIDocsMarksPublicRoutes(t *testing.T) {
	r := newRouter(t, Services{})

	rec := call(r, http.MethodGet, "/v3/api-docs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var docs apiDocs
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	public := map[string]bool{}
	for _, route := range docs.Routes {
		public[route.Method+" "+route.Path] = route.Public
	}
	assert.True(t, public["GET /rentals"])
	assert.True(t, public["POST /login"])
	assert.False(t, public["GET /users"])
	assert.False(t, public["GET /profile/me"])
}

func TestHealthReportsChecks(t *testing.T) {
	r := newRouter(t, Services{},
		HealthCheck{Name: "database", Ping: func(context.Context) error { return nil }},
		HealthCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("refused") }},
	)

	rec := call(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, "DEGRADED", body["status"])
	assert.Equal(t, map[string]any{"database": "UP", "redis": "DOWN"}, body["checks"])
}

func TestParseTime(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-02T10:00:00":       time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		"2024-03-02T10:00":          time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		"2024-03-02T10:00:00Z":      time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		"2024-03-02T12:00:00+02:00": time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		"2024-03-02T10:00:00.5":     time.Date(2024, 3, 2, 10, 0, 0, 500_000_000, time.UTC),
	}
	for in, want := range cases {
		got, err := parseTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}

	_, err := parseTime("03/02/2024")
	assert.Error(t, err)
}

func TestMultibytePasswordOverBcryptLimit(t *testing.T) {
	auth := &stubAuth{}
	users := &stubUsers{}
	r := newRouter(t, Services{Auth: auth, Users: users})
	password := strings.Repeat("é", 72)

	rec := call(r, http.MethodPost, "/register", "", map[string]any{
		"email": "ana@example.com", "fullName": "Ana Lima", "password": password,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The field 'password' must not exceed 72 bytes.", jsonBody(t, rec)["errors"].(map[string]any)["password"])
	assert.Empty(t, auth.lastRegister.Email)

	rec = call(r, http.MethodPost, "/users", "user-token", map[string]any{
		"full_name": "Ana Lima", "email": "ana@example.com", "password": password,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(r, http.MethodPut, "/users/3", "user-token", map[string]any{"password": password})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, users.lastUpdate.Password)
}

func TestListReviewsRatingOutOfIntegerRange(t *testing.T) {
	reviews := &stubReviews{}
	r := newRouter(t, Services{Reviews: reviews})

	rec := call(r, http.MethodGet, "/reviews?min_rating=3000000000", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, jsonBody(t, rec)["errors"], "min_rating")
	assert.Nil(t, reviews.lastFilter)

	rec = call(r, http.MethodGet, "/reviews?max_rating=2147483647", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2147483647, *reviews.lastFilter.Rating.To)
}

func TestPaymentsByBlankStatus(t *testing.T) {
	payments := &stubPayments{}
	r := newRouter(t, Services{Payments: payments})

	rec := call(r, http.MethodGet, "/payments/status/%20", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid value for path parameter 'status'", jsonBody(t, rec)["errorMessage"])
	assert.Nil(t, payments.lastFilter)
}
