package service

import (
	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

// Services groups the stub backend services.
type Services struct {
	UserService    UserService
	WalletService  WalletService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.BackendConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:    NewUserService(storages.UserRepository, storages.WalletRepository, cfg, logger),
		WalletService:  NewWalletService(storages.UserRepository, storages.WalletRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
