package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwise-app/booking-api/internal/auth"
	"github.com/bookwise-app/booking-api/internal/config"
	"github.com/bookwise-app/booking-api/internal/handlers"
	infraRepo "github.com/bookwise-app/booking-api/internal/infra/repository"
	"github.com/bookwise-app/booking-api/internal/middleware"
	"github.com/bookwise-app/booking-api/internal/storage"
	ucBooking "github.com/bookwise-app/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	avatars storage.AvatarStore,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	jwt := auth.NewJWT(cfg.JWTSecret, auth.TokenTTL)
	userRepo := infraRepo.NewUserGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)
	listOwnBookingsUC := ucBooking.NewListOwnBookings(bookingRepo)
	listAllBookingsUC := ucBooking.NewListAllBookings(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, jwt)
	meHandler := handlers.NewMeHandler(db, avatars)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listOwnBookingsUC,
		getBookingUC,
		updateBookingStatusUC,
		deleteBookingUC,
	)

	adminHandler := handlers.NewAdminHandler(
		db,
		listAllBookingsUC,
		updateBookingStatusUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTH (bearer)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(jwt))
		{
			secured.GET("/auth/me", meHandler.GetMe)
			secured.PUT("/auth/profile", meHandler.UpdateProfile)
			secured.PUT("/auth/password", meHandler.ChangePassword)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListOwn)
			secured.GET("/bookings/:id", bookingHandler.GetOne)
			secured.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)
				admin.GET("/bookings", adminHandler.ListBookings)
				admin.PUT("/bookings/:id/status", adminHandler.UpdateBookingStatus)
			}
		}
	}
}
