package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-w3s-wallet/internal/config"
	"github.com/MKhiriev/go-w3s-wallet/internal/logger"
	"github.com/MKhiriev/go-w3s-wallet/internal/utils"
	"github.com/MKhiriev/go-w3s-wallet/models"
	"github.com/go-resty/resty/v2"
)

const (
	userTokenHeader = "X-User-Token"
	traceIDHeader   = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. A zero timeout leaves requests without a deadline.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateUser implements [ServerAdapter]. A response missing any session field
// is treated as malformed.
func (h *httpServerAdapter) CreateUser(ctx context.Context) (models.Session, error) {
	resp, err := h.request(ctx).Post("/api/user")
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: create user request: %w", ErrNetwork, err)
	}

	return h.decodeSession(resp, "create user")
}

// RefreshUserToken implements [ServerAdapter].
func (h *httpServerAdapter) RefreshUserToken(ctx context.Context, userID string) (models.Session, error) {
	resp, err := h.request(ctx).
		SetBody(models.RefreshTokenRequest{UserID: userID}).
		Post("/api/user/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: refresh user token request: %w", ErrNetwork, err)
	}

	return h.decodeSession(resp, "refresh user token")
}

// ListWallets implements [ServerAdapter].
func (h *httpServerAdapter) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/api/wallets")
	if err != nil {
		return nil, fmt.Errorf("%w: list wallets request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeBody[[]models.Wallet](resp, "list wallets")
}

// ListBalances implements [ServerAdapter].
func (h *httpServerAdapter) ListBalances(ctx context.Context, walletID string) ([]models.TokenBalance, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParam("walletID", walletID).
		Get("/api/wallets/{walletID}/balances")
	if err != nil {
		return nil, fmt.Errorf("%w: list balances request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeBody[[]models.TokenBalance](resp, "list balances")
}

func (h *httpServerAdapter) decodeSession(resp *resty.Response, op string) (models.Session, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := decodeBody[models.Session](resp, op)
	if err != nil {
		return models.Session{}, err
	}
	if !session.Validate() {
		return models.Session{}, fmt.Errorf("%w: %s response: incomplete session", ErrDecode, op)
	}

	return session, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	traceID := utils.NewTraceID()
	h.logger.Debug().Str("trace_id", traceID).Msg("outgoing request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.request(ctx).SetHeader(userTokenHeader, token), nil
}
