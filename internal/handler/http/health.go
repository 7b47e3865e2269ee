package http

import (
	"net/http"
	"sync/atomic"

	"github.com/windfall/lingua_service/pkg/response"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	ready    atomic.Bool
	provider string
}

// NewHealthHandler creates a new health handler reporting the active AI provider.
func NewHealthHandler(provider string) *HealthHandler {
	h := &HealthHandler{provider: provider}
	h.ready.Store(true)
	return h
}

// SetReady sets the ready state.
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Health checks if the service is healthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"status":      "healthy",
		"service":     "lingua_service",
		"ai_provider": h.provider,
	})
}

// Ready checks if the service is ready to receive traffic.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		response.JSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "not_ready",
		})
		return
	}

	response.OK(w, map[string]interface{}{
		"status": "ready",
	})
}

// Live reports that the process is up; used as the Kubernetes liveness check.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"status": "alive",
	})
}
