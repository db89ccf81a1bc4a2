package router

import (
	"net/http"

	"ProviderAPI/internal/config"
	"ProviderAPI/internal/handler"
	"ProviderAPI/internal/logger"
	"ProviderAPI/internal/metrics"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// NewRouter wires the provider endpoints, health checks and, when enabled, /metrics.
func NewRouter(cfg *config.Config, svc handler.ProviderService) http.Handler {
	h := handler.New(svc, cfg.Database.QueryTimeout)
	mux := http.NewServeMux()

	route := func(pattern string, fn http.HandlerFunc) {
		wrapped := withCORS(cfg.CORS.AllowOrigin, cfg.CORS.AllowCredentials, withLogging(pattern, fn))
		mux.HandleFunc("GET "+pattern, wrapped)
		mux.HandleFunc("OPTIONS "+pattern, wrapped)
	}

	route("/api/providers/search", h.Search)
	route("/api/providers/filters", h.Filters)
	route("/api/providers/{npi}", h.Detail)
	route("/health", h.Health)
	route("/health/ready", h.Ready)

	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}
	return mux
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func withLogging(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		metrics.ObserveRequest(route, sw.status)

		fields := map[string]any{
			"request_id": reqID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"query":      r.URL.RawQuery,
			"status":     sw.status,
		}
		switch {
		case sw.status >= 500:
			logger.Error("response", fields)
		case sw.status >= 400:
			logger.Warn("response", fields)
		default:
			logger.Info("response", fields)
		}
	}
}
