package handler

import (
	"errors"
	"net/http"

	"ProviderAPI/internal/model"
)

const detailEndpoint = "/api/providers/{npi}"

// Detail handles GET /api/providers/{npi}.
func (h *Providers) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	provider, err := h.svc.Detail(ctx, r.PathValue("npi"))
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, detailEndpoint, http.StatusNotFound, "Provider not found")
	case err != nil:
		writeFailure(w, detailEndpoint, err, "Failed to fetch provider detail")
	default:
		writeJSON(w, detailEndpoint, http.StatusOK, provider)
	}
}
