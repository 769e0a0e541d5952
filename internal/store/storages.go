package store

import "github.com/MKhiriev/go-w3s-wallet/internal/logger"

// Storages groups the stub backend repositories.
type Storages struct {
	UserRepository   UserRepository
	WalletRepository WalletRepository
}

// NewStorages creates in-memory backend repositories holding at most
// capacity users each.
func NewStorages(capacity int, logger *logger.Logger) *Storages {
	logger.Debug().Int("capacity", capacity).Msg("creating in-memory storages")
	return &Storages{
		UserRepository:   NewUserMemoryRepository(capacity, logger),
		WalletRepository: NewWalletMemoryRepository(capacity, logger),
	}
}
