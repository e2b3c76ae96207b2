package handlers

import (
	"net/http"
)

// HealthCheck returns the health status of the application
// @Summary Health check
// @Description Returns the health status of the proxy
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Health status"
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
