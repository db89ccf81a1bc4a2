package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ProviderAPI/internal/logger"
	"ProviderAPI/internal/model"
)

const searchEndpoint = "/api/providers/search"

// Search handles GET /api/providers/search?query=&state=&specialty=&page=&limit=.
func (h *Providers) Search(w http.ResponseWriter, r *http.Request) {
	params, err := parseSearchParams(r.URL.Query())
	if err != nil {
		logger.Warn("invalid_parameter", map[string]any{
			"endpoint": searchEndpoint,
			"error":    err.Error(),
		})
		writeError(w, searchEndpoint, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	result, err := h.svc.Search(ctx, params)
	if err != nil {
		writeFailure(w, searchEndpoint, err, "Failed to search providers")
		return
	}
	writeJSON(w, searchEndpoint, http.StatusOK, result)
}

// parseSearchParams maps the query string onto model.SearchParams.
// query is passed through untouched; page and limit must be integers when present.
func parseSearchParams(q url.Values) (model.SearchParams, error) {
	params := model.SearchParams{
		Query:     q.Get("query"),
		State:     strings.TrimSpace(q.Get("state")),
		Specialty: strings.TrimSpace(q.Get("specialty")),
	}

	var err error
	if params.Page, err = parseIntParam(q, "page"); err != nil {
		return params, err
	}
	if params.Limit, err = parseIntParam(q, "limit"); err != nil {
		return params, err
	}
	return params, nil
}

func parseIntParam(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", model.ErrInvalidParameter, name)
	}
	return n, nil
}
