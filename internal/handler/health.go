package handler

import (
	"net/http"

	"ProviderAPI/internal/logger"
)

// Health reports that the process is up without touching storage.
func (h *Providers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "/health", http.StatusOK, map[string]string{"status": "ok"})
}

// Ready pings storage and answers 503 while it is unreachable.
func (h *Providers) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.svc.Ready(ctx); err != nil {
		logger.Warn("not_ready", map[string]any{"error": err.Error()})
		writeJSON(w, "/health/ready", http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, "/health/ready", http.StatusOK, map[string]string{"status": "ok"})
}
