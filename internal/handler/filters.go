package handler

import "net/http"

const filtersEndpoint = "/api/providers/filters"

// Filters handles GET /api/providers/filters.
func (h *Providers) Filters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	opts, err := h.svc.Filters(ctx)
	if err != nil {
		writeFailure(w, filtersEndpoint, err, "Failed to fetch filters")
		return
	}
	writeJSON(w, filtersEndpoint, http.StatusOK, opts)
}
