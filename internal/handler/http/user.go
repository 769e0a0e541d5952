package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/asaskevich/govalidator"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/utils"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, err := h.services.UserService.CreateUser(r.Context())
	if err != nil {
		log.Err(err).Msg("user creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		log.Err(err).Msg("invalid refresh token request")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	session, err := h.services.UserService.RefreshToken(r.Context(), req.UserID)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("token refresh failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}
