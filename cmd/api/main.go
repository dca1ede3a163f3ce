package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/config"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/database"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/handlers"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/mailer"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/middleware"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/services"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using process environment")
	}

	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	// Initialize database with better error handling
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis (optional - only backs the booking-form rate limiter)
	if err := services.InitRedis(env.RedisURL); err != nil {
		log.Printf("Redis initialization warning: %v", err)
	}

	// Initialize Storage (S3 or local fallback) for export archives
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	bookings := store.NewGormStore(db)
	dispatcher := mailer.NewSMTPMailer()

	// Initialize WebSocket hub for the admin booking feed
	hub := services.NewHub()
	go hub.Run()

	// Initialize router
	r := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{env.SiteOrigin}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/services", handlers.GetServices())

		bookingsAPI := api.Group("/bookings")
		{
			bookingsAPI.POST("", middleware.BookingRateLimit(env.BookingRateMax), handlers.CreateBooking(bookings, dispatcher, hub))
			bookingsAPI.GET("/:bookingId", handlers.GetBooking(bookings))
			bookingsAPI.GET("", middleware.AuthAdmin(), handlers.ListBookings(bookings))
		}
	}

	admin := r.Group("/admin")
	{
		// Public auth routes: login, forgot/reset password, seed
		auth := admin.Group("/auth")
		{
			auth.POST("/login", handlers.AdminLogin(db))
			auth.POST("/logout", handlers.AdminLogout())
			auth.POST("/create", handlers.CreateAdmin(db))
			auth.POST("/forgot-password", handlers.ForgotAdminPassword(db, dispatcher))
			auth.POST("/reset-password", handlers.ResetAdminPassword(db))
			auth.POST("/change-password", middleware.AuthAdmin(), handlers.ChangeAdminPassword(db))
		}

		// Protected admin routes
		protected := admin.Group("/")
		protected.Use(middleware.AuthAdmin())
		{
			protected.PUT("/bookings/:bookingId/allot", handlers.AllotBooking(bookings, dispatcher, hub))
			protected.GET("/bookings/export", handlers.ExportBookings(bookings))
			protected.GET("/ws", handlers.AdminFeed(hub))
		}
	}

	if err := r.Run(":" + env.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
