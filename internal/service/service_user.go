package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/store"
	"github.com/MKhiriev/go-w3s-wallet/internal/utils"
	"github.com/MKhiriev/go-w3s-wallet/models"
)

// provisionedChain describes a wallet created for every new user.
type provisionedChain struct {
	blockchain   string
	nativeSymbol string
	usdcAddress  string
}

var provisionedChains = []provisionedChain{
	{blockchain: "MATIC-MUMBAI", nativeSymbol: "MATIC", usdcAddress: "0x9999f7fea5938fd3b1e26a12c3f2fb024e194f97"},
	{blockchain: "ETH-GOERLI", nativeSymbol: "ETH", usdcAddress: "0x07865c6e87b9f70255377e024ace6630c1eaa37f"},
}

const (
	nativeStartAmount = "0"
	usdcStartAmount   = "10"
)

// userService is the stub backend implementation of [UserService]. Tokens are
// HS256 JWTs whose subject is the user ID.
type userService struct {
	users   store.UserRepository
	wallets store.WalletRepository
	ids     *utils.UUIDGenerator

	tokenSignKey        string
	tokenIssuer         string
	tokenDuration       time.Duration
	walletCreationDelay time.Duration

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, wallets store.WalletRepository, cfg *config.BackendConfig, logger *logger.Logger) UserService {
	return &userService{
		users:               users,
		wallets:             wallets,
		ids:                 utils.NewUUIDGenerator(),
		tokenSignKey:        cfg.TokenSignKey,
		tokenIssuer:         cfg.TokenIssuer,
		tokenDuration:       cfg.TokenDuration,
		walletCreationDelay: cfg.WalletCreationDelay,
		logger:              logger,
	}
}

func (s *userService) CreateUser(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user := models.User{
		ID:             s.ids.Generate(),
		CreatedAt:      now,
		WalletsReadyAt: now.Add(s.walletCreationDelay),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("user creation ended with error")
		return models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err := s.wallets.SaveWallets(ctx, user.ID, s.provisionWallets(user)); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("wallet provisioning failed")
		return models.Session{}, fmt.Errorf("wallet provisioning failed: %w", err)
	}

	session, err := s.issueSession(user.ID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("creation of token failed")
		return models.Session{}, err
	}

	log.Info().Str("user_id", user.ID).Time("wallets_ready_at", user.WalletsReadyAt).Msg("user created")
	return session, nil
}

func (s *userService) RefreshToken(ctx context.Context, userID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if _, err := s.users.FindUser(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return models.Session{}, fmt.Errorf("user search failed: %w", err)
	}

	session, err := s.issueSession(userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("creation of token failed")
		return models.Session{}, err
	}

	return session, nil
}

// ParseToken normalises every validation failure other than expiry to
// [ErrTokenIsInvalid]. Tokens of users the backend no longer knows are
// invalid too.
func (s *userService) ParseToken(ctx context.Context, userToken string) (string, error) {
	userID, err := utils.ValidateUserToken(userToken, s.tokenSignKey, s.tokenIssuer)
	switch {
	case errors.Is(err, utils.ErrUserTokenExpired):
		return "", ErrTokenIsExpired
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	if _, err = s.users.FindUser(ctx, userID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	return userID, nil
}

// issueSession signs a fresh user token and pairs it with a new encryption
// key and challenge ID.
func (s *userService) issueSession(userID string) (models.Session, error) {
	token, err := utils.GenerateUserToken(s.tokenIssuer, userID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		UserID:      userID,
		UserToken:   token,
		SecretKey:   s.ids.Generate(),
		ChallengeID: s.ids.Generate(),
	}, nil
}

func (s *userService) provisionWallets(user models.User) []models.Wallet {
	created := user.WalletsReadyAt.Format(time.RFC3339)
	walletSetID := s.ids.Generate()

	wallets := make([]models.Wallet, 0, len(provisionedChains))
	for i, chain := range provisionedChains {
		wallets = append(wallets, models.Wallet{
			ID:           s.ids.Generate(),
			State:        "LIVE",
			WalletSetID:  walletSetID,
			CustodyType:  "ENDUSER",
			UserID:       user.ID,
			Address:      s.newAddress(),
			AddressIndex: i,
			Blockchain:   chain.blockchain,
			UpdateDate:   created,
			CreateDate:   created,
			Balances: []models.TokenBalance{
				{
					Token: models.TokenInfo{
						ID:         s.ids.Generate(),
						Blockchain: chain.blockchain,
						Name:       chain.nativeSymbol,
						Symbol:     chain.nativeSymbol,
						Decimals:   18,
						IsNative:   true,
						UpdateDate: created,
						CreateDate: created,
					},
					Amount:     nativeStartAmount,
					UpdateDate: created,
				},
				{
					Token: models.TokenInfo{
						ID:           s.ids.Generate(),
						Blockchain:   chain.blockchain,
						TokenAddress: chain.usdcAddress,
						Standard:     "ERC20",
						Name:         "USD Coin",
						Symbol:       "USDC",
						Decimals:     6,
						UpdateDate:   created,
						CreateDate:   created,
					},
					Amount:     usdcStartAmount,
					UpdateDate: created,
				},
			},
		})
	}

	return wallets
}

// newAddress returns a random 20-byte hex address.
func (s *userService) newAddress() string {
	hex := strings.ReplaceAll(s.ids.Generate()+s.ids.Generate(), "-", "")
	return "0x" + hex[len(hex)-40:]
}
