package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.AllowAll().Handler)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user", h.createUser)
		r.Post("/api/user/token", h.refreshToken)
		r.Get("/version", h.getServerVersion)
	})

	// routes authorized by X-User-Token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/wallets", h.listWallets)
		r.Get("/api/wallets/{walletID}/balances", h.listBalances)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
