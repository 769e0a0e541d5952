package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so
// every resty method is available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient that sends and expects
// JSON. Each call returns its own connection pool and state.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:3000/api/wallets")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
