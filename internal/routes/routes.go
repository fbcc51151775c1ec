package routes

import (
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"WANDERPLAN_BACK-END/internal/config"
	"WANDERPLAN_BACK-END/internal/handlers"
	"WANDERPLAN_BACK-END/internal/middleware"
)

// Handlers bundles every handler the route table needs
type Handlers struct {
	Auth           *handlers.AuthHandler
	GoogleAuth     *handlers.GoogleAuthHandler
	ForgotPassword *handlers.ForgotPasswordHandler
	Trips          *handlers.TripsHandler
	Items          *handlers.ItemsHandler
	Assembly       *handlers.AssemblyHandler
	Catalog        *handlers.CatalogHandler
	Health         *handlers.HealthHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(h Handlers, cfg *config.Config) {
	jwtCfg := &cfg.JWT

	// Health check routes
	http.HandleFunc("/healthz", h.Health.HealthCheck)
	http.HandleFunc("/livez", h.Health.LivenessCheck)
	http.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", h.Auth.Register)
	http.HandleFunc("/api/auth/login", h.Auth.Login)
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(h.Auth.Profile, jwtCfg))
	http.HandleFunc("/api/auth/google/login", h.GoogleAuth.GoogleLogin)
	http.HandleFunc("/api/auth/google/callback", h.GoogleAuth.GoogleCallback)
	http.HandleFunc("/api/auth/forgot-password", h.ForgotPassword.ForgotPassword)
	http.HandleFunc("/api/auth/verify-reset-code", h.ForgotPassword.VerifyResetCode)
	http.HandleFunc("/api/auth/reset-password", h.ForgotPassword.ResetPassword)

	// Trip routes. /api/trips/{id}/items appends an item; every other
	// /api/trips path goes through the method dispatcher.
	http.HandleFunc("/api/trips", middleware.AuthMiddleware(h.Trips.Trips, jwtCfg))
	http.HandleFunc("/api/trips/", middleware.AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), "/items") {
			h.Items.AppendItem(w, r)
			return
		}
		h.Trips.Trips(w, r)
	}, jwtCfg))

	// Item routes
	http.HandleFunc("/api/items/", middleware.AuthMiddleware(h.Items.Items, jwtCfg))

	// Draft assembly session routes
	http.HandleFunc("/api/assembly/target", middleware.AuthMiddleware(h.Assembly.SetTarget, jwtCfg))
	http.HandleFunc("/api/assembly/selection", middleware.AuthMiddleware(h.Assembly.ToggleSelection, jwtCfg))
	http.HandleFunc("/api/assembly/session", middleware.AuthMiddleware(h.Assembly.GetSession, jwtCfg))
	http.HandleFunc("/api/assembly/copy", middleware.AuthMiddleware(h.Assembly.CopySelected, jwtCfg))

	// Catalog routes
	http.HandleFunc("/api/catalog/countries", h.Catalog.GetCountries)
	http.HandleFunc("/api/catalog/cities", h.Catalog.GetCities)
	http.HandleFunc("/api/catalog/suggestions", h.Catalog.GetSuggestions)

	// Swagger documentation
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Wanderplan backend is running."))
}
