package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"loan-processing-api/internal/api/handler/dto"
)

const apiVersion = "1.0.0"

// Pinger is the slice of the database pool the health check depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db          Pinger
	environment string
	logger      *slog.Logger
}

func NewHealthHandler(db Pinger, environment string, l *slog.Logger) *HealthHandler {
	if db == nil {
		panic("database pinger cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &HealthHandler{
		db:          db,
		environment: environment,
		logger:      l.With("component", "HealthHandler"),
	}
}

// Root handles GET /
// @Summary Welcome message
// @Tags Root
// @Produce json
// @Success 200 {object} dto.WelcomeResponse "Static welcome payload"
// @Router / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.WelcomeResponse{Message: "Welcome to Loan Processing API"})
}

// Check handles GET /health
// @Summary Health check
// @Description Reports database connectivity. Always answers 200 so monitors can poll it; a broken store shows up as status "unhealthy" in the body.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Health status with database connectivity"
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  "connected",
		Details: &dto.HealthDetails{
			APIVersion:  apiVersion,
			Environment: h.environment,
		},
	}

	if err := h.db.Ping(pingCtx); err != nil {
		h.logger.WarnContext(r.Context(), "Health check database ping failed", slog.Any("error", err))
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		resp.Details = nil
		resp.Error = err.Error()
	}

	respondJSON(w, http.StatusOK, resp)
}
