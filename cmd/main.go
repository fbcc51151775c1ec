// @title Wanderplan Backend API
// @version 1.0
// @description Wanderplan Backend API for assembling multi-city travel drafts
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/cors"

	_ "WANDERPLAN_BACK-END/docs" // This is required for swagger
	"WANDERPLAN_BACK-END/internal/assembly"
	"WANDERPLAN_BACK-END/internal/catalog"
	"WANDERPLAN_BACK-END/internal/config"
	"WANDERPLAN_BACK-END/internal/db"
	"WANDERPLAN_BACK-END/internal/handlers"
	"WANDERPLAN_BACK-END/internal/routes"
	"WANDERPLAN_BACK-END/internal/tripstore"
	"WANDERPLAN_BACK-END/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	pool, err := db.ConnectPostgres(ctx, cfg)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisClient := db.ConnectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// --- Services ---

	store := tripstore.New(pool)
	copier := assembly.NewCopier(store)
	registry := assembly.NewRegistry(copier, store)

	cityCatalog, err := catalog.NewCityCatalog()
	if err != nil {
		log.Fatalf("load city catalog: %v", err)
	}
	suggestions := catalog.NewSuggestions(pool, redisClient, cfg.Redis.CacheTTL)
	emailService := utils.NewEmailService(&cfg.Email)

	// --- HTTP Handlers ---

	h := routes.Handlers{
		Auth:           handlers.NewAuthHandler(pool, cfg),
		GoogleAuth:     handlers.NewGoogleAuthHandler(pool, cfg),
		ForgotPassword: handlers.NewForgotPasswordHandler(pool, cfg, emailService),
		Trips:          handlers.NewTripsHandler(store),
		Items:          handlers.NewItemsHandler(store),
		Assembly:       handlers.NewAssemblyHandler(registry),
		Catalog:        handlers.NewCatalogHandler(cityCatalog, suggestions),
		Health:         handlers.NewHealthHandler(pool, redisClient),
	}

	routes.SetupRoutes(h, cfg)

	// --- HTTP Server + Graceful Shutdown ---

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
