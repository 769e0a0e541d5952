package store

import (
	"context"
	"sync"

	"github.com/zyedidia/generic/cache"

	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

// DefaultMemoryCapacity bounds the number of users the in-memory backend
// repositories retain. The least recently used entries are evicted first.
const DefaultMemoryCapacity = 10_000

type userMemoryRepository struct {
	mu    sync.Mutex
	users *cache.Cache[string, models.User]

	logger *logger.Logger
}

// NewUserMemoryRepository creates an LRU-bounded in-memory [UserRepository].
func NewUserMemoryRepository(capacity int, logger *logger.Logger) UserRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &userMemoryRepository{
		users:  cache.New[string, models.User](capacity),
		logger: logger,
	}
}

func (r *userMemoryRepository) CreateUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users.Get(user.ID); ok {
		r.logger.Error().Str("func", "*userMemoryRepository.CreateUser").Str("user_id", user.ID).Msg("user already exists")
		return ErrUserAlreadyExists
	}

	r.users.Put(user.ID, user)
	return nil
}

func (r *userMemoryRepository) FindUser(ctx context.Context, userID string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users.Get(userID)
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}
