package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/redshift-games/tyrian-world/internal/services"
)

type HealthResponse struct {
	Status     string                 `json:"status"`
	Timestamp  time.Time              `json:"timestamp"`
	Service    string                 `json:"service"`
	Components map[string]interface{} `json:"components"`
}

type HealthHandler struct {
	storage services.Storage
	archive services.Archive
	queue   Enqueuer
	logger  *slog.Logger
}

// NewHealthHandler creates a health handler. archive and queue may be
// nil when the API runs without them.
func NewHealthHandler(logger *slog.Logger, storage services.Storage, archive services.Archive, queue Enqueuer) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		storage: storage,
		archive: archive,
		queue:   queue,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	h.logger.Debug("Health check requested",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	components := make(map[string]interface{})
	overallStatus := "healthy"

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Warn("Session store health check failed", "error", err)
		components["redis"] = "unhealthy"
		overallStatus = "degraded"
	} else {
		components["redis"] = "healthy"
	}

	if h.archive != nil {
		if err := h.archive.Ping(ctx); err != nil {
			h.logger.Warn("Archive health check failed", "error", err)
			components["archive"] = "unhealthy"
			overallStatus = "degraded"
		} else {
			components["archive"] = "healthy"
		}
	}

	if h.queue != nil {
		depth, err := h.queue.QueueDepth(ctx)
		if err != nil {
			h.logger.Warn("Queue health check failed", "error", err)
			components["queue"] = "unhealthy"
			overallStatus = "degraded"
		} else {
			components["queue"] = map[string]interface{}{
				"status": "healthy",
				"depth":  depth,
			}
		}
	}

	response := HealthResponse{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Service:    "tyrian-world",
		Components: components,
	}

	statusCode := http.StatusOK
	if overallStatus != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Error encoding health response",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
