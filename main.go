// main.go - Entry point for the recipe/cart backend server

package main // Declares the package name

import ( // Import required packages
	"context"
	"errors"
	"log" // Logging
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-cart-backend/config"      // Project config management
	"recipe-cart-backend/credentials" // Password hashing
	"recipe-cart-backend/database"    // Database connection and setup
	"recipe-cart-backend/handlers"    // HTTP handlers for API endpoints
	"recipe-cart-backend/middleware"  // CORS, security headers and request logging

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error: ", err)
	}

	store, err := database.Connect(cfg) // Open the database and migrate the schema
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}
	defer store.Close()

	hasher, err := credentials.NewHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatal("credentials error: ", err)
	}

	// STEP 2: Create Gin router and configure routes
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(handlers.Recovery(cfg.Env)) // JSON 500 envelope on panics
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes)) // 413 past the configured size
	if cfg.IsDevelopment() {
		r.Use(middleware.RequestLogger(log.Default()))
	}
	r.Use(middleware.CORS(cfg.CORSOrigin))
	handlers.New(store, hasher, cfg.Env).SetupRoutes(r)

	// STEP 3: Start the web server and stop it cleanly on SIGINT/SIGTERM
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Printf("server running on port %s (env=%s, db=%s)", cfg.Port, cfg.Env, cfg.DBDriver)
		log.Printf("health check available at http://localhost:%s/health", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error: ", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("shutdown signal received, shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	log.Println("server closed")
}
