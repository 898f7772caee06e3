package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"carrental/internal/middleware"
	"carrental/internal/models"
	"carrental/internal/security"
	"carrental/internal/service"
)

type AuthAPI interface {
	Register(ctx context.Context, input service.RegisterInput) (models.User, error)
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	Profile(ctx context.Context, email string) (service.UserProfile, error)
}

type UserAPI interface {
	Create(ctx context.Context, input service.CreateUserInput) (service.UserProfile, error)
	Get(ctx context.Context, id int64) (service.UserProfile, error)
	List(ctx context.Context) ([]service.UserProfile, error)
	Update(ctx context.Context, id int64, input service.UpdateUserInput) (service.UserProfile, error)
	ChangeRole(ctx context.Context, id, roleID int64) (service.UserProfile, error)
	Delete(ctx context.Context, id int64) error
}

type RoleAPI interface {
	Create(ctx context.Context, name string) (models.Role, error)
	Get(ctx context.Context, id int64) (models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, id int64, name string) (models.Role, error)
	Delete(ctx context.Context, id int64) error
}

type LocationAPI interface {
	Create(ctx context.Context, loc models.Location) (models.Location, error)
	Get(ctx context.Context, id int64) (models.Location, error)
	List(ctx context.Context) ([]models.Location, error)
	Update(ctx context.Context, id int64, input service.UpdateLocationInput) (models.Location, error)
	Delete(ctx context.Context, id int64) error
}

type VehicleAPI interface {
	Create(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	Get(ctx context.Context, id int64) (models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Update(ctx context.Context, id int64, input service.UpdateVehicleInput) (models.Vehicle, error)
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, id int64, input service.VehicleImageInput) (models.Vehicle, error)
}

type RentalAPI interface {
	Create(ctx context.Context, r models.Rental) (models.Rental, error)
	Get(ctx context.Context, id int64) (models.Rental, error)
	List(ctx context.Context, f models.RentalFilter) ([]models.Rental, error)
	Update(ctx context.Context, id int64, input service.UpdateRentalInput) (models.Rental, error)
	Delete(ctx context.Context, id int64) error
}

type PaymentAPI interface {
	Create(ctx context.Context, p models.Payment) (models.Payment, error)
	Get(ctx context.Context, id int64) (models.Payment, error)
	List(ctx context.Context, f models.PaymentFilter) ([]models.Payment, error)
	Update(ctx context.Context, id int64, input service.UpdatePaymentInput) (models.Payment, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewAPI interface {
	Create(ctx context.Context, rv models.Review) (models.Review, error)
	Get(ctx context.Context, id int64) (models.Review, error)
	List(ctx context.Context, f models.ReviewFilter) ([]models.Review, error)
	Update(ctx context.Context, id int64, input service.UpdateReviewInput) (models.Review, error)
	Delete(ctx context.Context, id int64) error
}

// Services bundles the domain operations the HTTP layer exposes.
type Services struct {
	Auth      AuthAPI
	Users     UserAPI
	Roles     RoleAPI
	Locations LocationAPI
	Vehicles  VehicleAPI
	Rentals   RentalAPI
	Payments  PaymentAPI
	Reviews   ReviewAPI
}

type HandlerSet struct {
	log         zerolog.Logger
	environment string
	svc         Services
	checks      []HealthCheck
	public      *security.PublicRoutes
	routes      func() gin.RoutesInfo
}

func NewHandlerSet(log zerolog.Logger, environment string, svc Services, public *security.PublicRoutes, checks ...HealthCheck) *HandlerSet {
	return &HandlerSet{
		log:         log,
		environment: environment,
		svc:         svc,
		checks:      checks,
		public:      public,
	}
}

// Mount registers every endpoint on the engine. Authentication and the
// public allow-list are applied by the server before these handlers run.
func (h *HandlerSet) Mount(engine *gin.Engine) {
	h.routes = engine.Routes

	engine.GET("/health", h.Health)
	engine.GET("/v3/api-docs", h.APIDocs)

	engine.POST("/register", h.Register)
	engine.POST("/login", h.Login)
	engine.GET("/profile/me", h.Me)

	users := engine.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:user_id", h.GetUser)
		users.PUT("/:user_id", h.UpdateUser)
		users.PUT("/:user_id/role", middleware.RequireRoles(models.RoleAdmin), h.ChangeUserRole)
		users.DELETE("/:user_id", h.DeleteUser)
	}

	roles := engine.Group("/roles")
	{
		roles.POST("", h.CreateRole)
		roles.GET("", h.ListRoles)
		roles.GET("/:role_id", h.GetRole)
		roles.PUT("/:role_id", h.UpdateRole)
		roles.DELETE("/:role_id", h.DeleteRole)
	}

	locations := engine.Group("/locations")
	{
		locations.POST("", h.CreateLocation)
		locations.GET("", h.ListLocations)
		locations.GET("/:location_id", h.GetLocation)
		locations.PUT("/:location_id", h.UpdateLocation)
		locations.DELETE("/:location_id", h.DeleteLocation)
	}

	vehicles := engine.Group("/vehicles")
	{
		vehicles.POST("", h.CreateVehicle)
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:vehicle_id", h.GetVehicle)
		vehicles.PUT("/:vehicle_id", h.UpdateVehicle)
		vehicles.DELETE("/:vehicle_id", h.DeleteVehicle)
		vehicles.POST("/:vehicle_id/image", h.UploadVehicleImage)
	}

	rentals := engine.Group("/rentals")
	{
		rentals.POST("", h.CreateRental)
		rentals.GET("", h.ListRentals)
		rentals.GET("/:rental_id", h.GetRental)
		rentals.PUT("/:rental_id", h.UpdateRental)
		rentals.DELETE("/:rental_id", h.DeleteRental)
	}

	payments := engine.Group("/payments")
	{
		payments.POST("", h.CreatePayment)
		payments.GET("", h.ListPayments)
		payments.GET("/user/:user_id", h.ListPaymentsByUser)
		payments.GET("/rental/:rental_id", h.ListPaymentsByRental)
		payments.GET("/status/:status", h.ListPaymentsByStatus)
		payments.GET("/:payment_id", h.GetPayment)
		payments.PUT("/:payment_id", h.UpdatePayment)
		payments.DELETE("/:payment_id", h.DeletePayment)
	}

	reviews := engine.Group("/reviews")
	{
		reviews.POST("", h.CreateReview)
		reviews.GET("", h.ListReviews)
		reviews.GET("/user/:user_id", h.ListReviewsByUser)
		reviews.GET("/rental/:rental_id", h.ListReviewsByRental)
		reviews.GET("/:review_id", h.GetReview)
		reviews.PUT("/:review_id", h.UpdateReview)
		reviews.DELETE("/:review_id", h.DeleteReview)
	}
}
