package http

import (
	"net/http"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
)

// getServerVersion answers GET /version with the backend build info as
// plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(buildInfo.String() + "\n")); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version response")
	}
}
