package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pandodao/generic"

	"github.com/MKhiriev/go-w3s-wallet/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderWallets(w io.Writer, wallets []models.Wallet) error {
	if len(wallets) == 0 {
		_, err := fmt.Fprintln(w, "No wallets")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "BLOCKCHAIN", "ADDRESS", "STATE", "BALANCES").
		Rows(generic.MapSlice(wallets, walletRow)...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func walletRow(w models.Wallet) []string {
	return []string{w.ID, w.Blockchain, w.Address, w.State, formatBalances(w.Balances)}
}

// formatBalances shows the most recent amount per token symbol, in the order
// the symbols first appeared.
func formatBalances(balances []models.TokenBalance) string {
	if len(balances) == 0 {
		return "-"
	}

	var symbols []string
	latest := make(map[string]string)
	for _, b := range balances {
		if _, ok := latest[b.Token.Symbol]; !ok {
			symbols = append(symbols, b.Token.Symbol)
		}
		latest[b.Token.Symbol] = generic.Try(b.Decimal()).String()
	}

	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		parts = append(parts, latest[s]+" "+s)
	}
	return strings.Join(parts, ", ")
}

// walletView exposes the balances that the wallet payload omits.
type walletView struct {
	models.Wallet
	Balances []models.TokenBalance `json:"balances"`
}

func walletViews(wallets []models.Wallet) []walletView {
	return generic.MapSlice(wallets, func(w models.Wallet) walletView {
		balances := w.Balances
		if balances == nil {
			balances = []models.TokenBalance{}
		}
		return walletView{Wallet: w, Balances: balances}
	})
}

func jsonPrint(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
