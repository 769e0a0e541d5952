package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/utils"
)

const userTokenHeader = "X-User-Token"

// auth authenticates requests by their X-User-Token header and stores the
// token's user ID in the request context under [utils.UserIDCtxKey].
//
// A missing, malformed or unknown token is answered with 401 and code
// 155101. An expired token is answered with 500 and code 155104, which
// clients treat as the signal to refresh.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userToken := r.Header.Get(userTokenHeader)
		if userToken == "" {
			log.Err(ErrEmptyUserTokenHeader).Send()
			writeError(w, ErrEmptyUserTokenHeader)
			return
		}

		ctx := r.Context()
		userID, err := h.services.UserService.ParseToken(ctx, userToken)
		if err != nil {
			log.Err(err).Msg("user token rejected")
			writeError(w, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
