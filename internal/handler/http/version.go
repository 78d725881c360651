package http

import (
	"io"
	"net/http"
)

// getServerVersion answers GET /api/version with the bare version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := io.WriteString(w, version); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
