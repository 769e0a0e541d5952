package http

import (
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/service"
)

// Handler serves the wallet backend API on top of the stub services.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("wallet API handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
