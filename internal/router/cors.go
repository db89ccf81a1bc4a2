package router

import (
	"net/http"
	"slices"
	"strings"
)

// corsPolicy is the parsed form of CORS_ALLOW_ORIGIN.
type corsPolicy struct {
	origins     []string
	wildcard    bool
	credentials bool
}

func newCORSPolicy(allowOrigin string, allowCredentials bool) corsPolicy {
	origins := parseOrigins(allowOrigin)
	return corsPolicy{
		origins:     origins,
		wildcard:    len(origins) == 0 || slices.Contains(origins, "*"),
		credentials: allowCredentials,
	}
}

// allowOrigin returns the Access-Control-Allow-Origin value for requestOrigin
// and whether the answer depends on it.
func (p corsPolicy) allowOrigin(requestOrigin string) (value string, varyOrigin bool) {
	if p.wildcard {
		// browsers reject "*" together with credentials
		if p.credentials && requestOrigin != "" {
			return requestOrigin, true
		}
		return "*", false
	}
	if requestOrigin != "" && slices.Contains(p.origins, requestOrigin) {
		return requestOrigin, true
	}
	return "", true
}

// withCORS adds CORS headers for the read-only API and answers preflight requests.
func withCORS(allowOrigin string, allowCredentials bool, h http.HandlerFunc) http.HandlerFunc {
	policy := newCORSPolicy(allowOrigin, allowCredentials)
	return func(w http.ResponseWriter, r *http.Request) {
		hdr := w.Header()
		value, vary := policy.allowOrigin(r.Header.Get("Origin"))
		if value != "" {
			hdr.Set("Access-Control-Allow-Origin", value)
		}
		if vary {
			hdr.Add("Vary", "Origin")
		}
		if policy.credentials {
			hdr.Set("Access-Control-Allow-Credentials", "true")
		}
		hdr.Set("Access-Control-Expose-Headers", requestIDHeader)

		if r.Method == http.MethodOptions {
			hdr.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			hdr.Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
			hdr.Set("Access-Control-Max-Age", "86400")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		h(w, r)
	}
}

func parseOrigins(allowOrigin string) []string {
	parts := strings.Split(allowOrigin, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
