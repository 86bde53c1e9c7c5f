package http

import (
	"net/http"
)

// getServerVersion answers GET /api/version with the algo-sync build version.
// The route is public so clients can check compatibility before logging in.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(version))
}
