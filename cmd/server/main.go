package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic_booking/internal/config"
	"clinic_booking/internal/handler"
	"clinic_booking/internal/middleware"
	"clinic_booking/internal/repository"
	"clinic_booking/internal/service"
	"clinic_booking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	sessionUtil := utils.NewSessionUtil(cfg.SessionSecret, cfg.SessionTTLHrs)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	deptRepo := repository.NewDepartmentRepository(dbPool)
	apptRepo := repository.NewAppointmentRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, sessionUtil)
	clinicService := service.NewClinicService(userRepo, deptRepo, apptRepo)

	// --- Bootstrap Admin ---
	if err := authService.EnsureBootstrapAdmin(context.Background(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to ensure bootstrap admin: %v", err)
	}

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clinicHandler := handler.NewClinicHandler(clinicService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// --- Initialize Middlewares ---
	sessionMW := middleware.SessionAuthMiddleware(sessionUtil)
	adminMW := middleware.AdminMiddleware()
	doctorMW := middleware.DoctorMiddleware()
	patientMW := middleware.PatientMiddleware()
	rateLimitMW := middleware.RateLimitMiddleware(middleware.NewRateLimiter(5, 10))

	// --- Register Routes ---
	authHandler.RegisterAuthRoutes(router, rateLimitMW)
	clinicHandler.RegisterClinicRoutes(router, sessionMW, adminMW, doctorMW, patientMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		// Check DB connection
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
