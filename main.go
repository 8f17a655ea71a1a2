package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lakehouse-backend/config"
	"lakehouse-backend/controllers"
	"lakehouse-backend/models"
	"lakehouse-backend/routes"
	"lakehouse-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	apiKey := os.Getenv("INTERNAL_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  INTERNAL_API_KEY not set. Submission API protection is disabled outside debug mode.")
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ ERROR: SESSION_SECRET environment variable is not set. Cannot sign admin sessions.")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// The pricing engine and conflict resolver are built once from the
	// canonical inventory; they hold no mutable state.
	pricingService := services.NewPricingService(services.DefaultPricingConfig(), models.DefaultBeds())
	availabilityService := services.NewAvailabilityService(models.DefaultBeds())
	submissionService := services.NewSubmissionService(db, pricingService, availabilityService)
	roomService := services.NewRoomService(db, pricingService, availabilityService)

	// Initialize controllers
	pricingController := controllers.NewPricingController(pricingService)
	roomController := controllers.NewRoomController(roomService)
	submissionController := controllers.NewSubmissionController(submissionService)
	authController := controllers.NewAuthController(sessionSecret)
	adminController := controllers.NewAdminController(submissionService)

	// Build router
	router := routes.SetupRouter(
		pricingController,
		roomController,
		submissionController,
		authController,
		adminController,
		apiKey,
		sessionSecret,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
