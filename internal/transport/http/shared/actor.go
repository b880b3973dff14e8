package shared

import (
	"net/http"
	"strings"
)

// Actor identifies who performed a request for the audit trail. The value
// comes from the X-Actor header set by the gateway; unauthenticated calls
// record "anonymous".
func Actor(r *http.Request) string {
	if actor := strings.TrimSpace(r.Header.Get("X-Actor")); actor != "" {
		return actor
	}
	return "anonymous"
}
