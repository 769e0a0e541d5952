package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

func TestRenderWallets_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderWallets(&buf, nil))
	assert.Equal(t, "No wallets\n", buf.String())
}

func TestFormatBalances(t *testing.T) {
	usdc := models.TokenInfo{Symbol: "USDC"}
	eth := models.TokenInfo{Symbol: "ETH"}

	tests := []struct {
		name     string
		balances []models.TokenBalance
		want     string
	}{
		{"none", nil, "-"},
		{"single", []models.TokenBalance{{Token: usdc, Amount: "10"}}, "10 USDC"},
		{"keeps first-seen order", []models.TokenBalance{{Token: eth, Amount: "0.5"}, {Token: usdc, Amount: "1"}}, "0.5 ETH, 1 USDC"},
		{"latest amount wins", []models.TokenBalance{{Token: usdc, Amount: "10"}, {Token: usdc, Amount: "12.00"}}, "12 USDC"},
		{"unparsable amount", []models.TokenBalance{{Token: usdc, Amount: "n/a"}}, "0 USDC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBalances(tt.balances))
		})
	}
}
