package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ProviderAPI/internal/logger"
	"ProviderAPI/internal/model"
)

// ProviderService is the read side the HTTP handlers call into.
type ProviderService interface {
	Search(ctx context.Context, params model.SearchParams) (model.SearchResult, error)
	Filters(ctx context.Context) (model.FilterOptions, error)
	Detail(ctx context.Context, npi string) (model.Provider, error)
	Ready(ctx context.Context) error
}

// Providers serves the /api/providers endpoints and the health checks.
type Providers struct {
	svc     ProviderService
	timeout time.Duration
}

// New returns handlers that bound every request to timeout; zero means no bound.
func New(svc ProviderService, timeout time.Duration) *Providers {
	return &Providers{svc: svc, timeout: timeout}
}

func (h *Providers) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, endpoint string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("write_response_failed", map[string]any{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
	}
}

func writeError(w http.ResponseWriter, endpoint string, status int, msg string) {
	writeJSON(w, endpoint, status, errorBody{Error: msg})
}

// statusClientClosedRequest is recorded when the caller went away before the answer was ready.
const statusClientClosedRequest = 499

// writeFailure answers a failed service call with a generic message; details stay in the logs.
func writeFailure(w http.ResponseWriter, endpoint string, err error, msg string) {
	if errors.Is(err, context.Canceled) {
		writeError(w, endpoint, statusClientClosedRequest, msg)
		return
	}
	writeError(w, endpoint, http.StatusInternalServerError, msg)
}
