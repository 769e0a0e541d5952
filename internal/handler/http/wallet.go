package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-w3s-wallet/internal/app"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/utils"
)

func (h *Handler) listWallets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg(app.MsgNoUserIDProvided)
		writeError(w, ErrEmptyUserTokenHeader)
		return
	}

	wallets, err := h.services.WalletService.ListWallets(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("wallet listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, wallets, http.StatusOK)
}

func (h *Handler) listBalances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg(app.MsgNoUserIDProvided)
		writeError(w, ErrEmptyUserTokenHeader)
		return
	}

	walletID := chi.URLParam(r, "walletID")
	balances, err := h.services.WalletService.ListBalances(ctx, userID, walletID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("wallet_id", walletID).Msg("balance listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, balances, http.StatusOK)
}
