package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"WANDERPLAN_BACK-END/internal/dto"
	"WANDERPLAN_BACK-END/internal/utils"
)

// Pinger is the connectivity probe a readiness check needs.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check related requests
type HealthHandler struct {
	db    Pinger
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler instance. A nil redis
// client is reported as disabled, not degraded.
func NewHealthHandler(db Pinger, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// HealthCheck handles basic health check (no database)
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (database plus cache connectivity)
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	details := map[string]any{}
	degraded := false

	if err := h.db.Ping(ctx); err != nil {
		details["db"] = err.Error()
		degraded = true
	} else {
		details["db"] = "ok"
	}

	if h.redis == nil {
		details["redis"] = "disabled"
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		// The suggestion cache is optional; losing it degrades but does
		// not fail readiness.
		details["redis"] = err.Error()
	} else {
		details["redis"] = "ok"
	}

	if degraded {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: details,
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: details,
	})
}
