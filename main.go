package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/routes"
	"stayhub-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	log.Println("database connection established, migrations and seed applied")

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db, roomService)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService, bookingService)
	bookingController := controllers.NewBookingController(bookingService)

	router := routes.SetupRouter(authController, roomController, bookingController, authService, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
