package handlers

import (
	"net/http"
)

// Statistics handlers

// GetStats returns per-destination forwarding statistics
// @Summary Get forwarding statistics
// @Description Returns request counts, error rates, byte totals and average response time for every destination matched since server start
// @Tags statistics
// @Produce json
// @Success 200 {object} map[string]stats.EndpointMetrics "Per-destination statistics"
// @Router /stats [get]
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.collector.Snapshot())
}
