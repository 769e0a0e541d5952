package service

import (
	"github.com/MKhiriev/go-w3s-wallet/internal/adapter"
	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
)

type ClientServices struct {
	SessionClient    SessionClient
	WalletRefreshJob WalletRefreshJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger, opts ...SessionClientOption) *ClientServices {
	client := NewSessionClient(serverAdapter, storages.SessionStore, cfg, logger, opts...)

	return &ClientServices{
		SessionClient:    client,
		WalletRefreshJob: NewWalletRefreshJob(client, logger),
	}
}
