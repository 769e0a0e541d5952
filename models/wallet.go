// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Wallet is a user-controlled wallet as returned by GET /api/wallets.
//
// Balances is not part of the wallet payload: it starts empty and is filled
// by follow-up balance requests keyed by ID.
type Wallet struct {
	ID           string `json:"id"`
	State        string `json:"state"`
	WalletSetID  string `json:"walletSetId"`
	CustodyType  string `json:"custodyType"`
	UserID       string `json:"userId"`
	Address      string `json:"address"`
	AddressIndex int    `json:"addressIndex"`
	Blockchain   string `json:"blockchain"`
	UpdateDate   string `json:"updateDate"`
	CreateDate   string `json:"createDate"`

	Balances []TokenBalance `json:"-"`
}

// Clone returns a copy of w that shares no balance storage with it.
func (w Wallet) Clone() Wallet {
	if w.Balances != nil {
		balances := make([]TokenBalance, len(w.Balances))
		copy(balances, w.Balances)
		w.Balances = balances
	}
	return w
}

// Total sums the amounts of every balance held in the token with the given
// symbol. Amounts that cannot be parsed are skipped.
func (w Wallet) Total(symbol string) decimal.Decimal {
	total := decimal.Zero
	for _, b := range w.Balances {
		if b.Token.Symbol != symbol {
			continue
		}
		amount, err := b.Decimal()
		if err != nil {
			continue
		}
		total = total.Add(amount)
	}
	return total
}

// TokenInfo describes the token a balance is denominated in.
type TokenInfo struct {
	ID           string `json:"id"`
	Blockchain   string `json:"blockchain"`
	TokenAddress string `json:"tokenAddress"`
	Standard     string `json:"standard"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Decimals     int    `json:"decimals"`
	IsNative     bool   `json:"isNative"`
	UpdateDate   string `json:"updateDate"`
	CreateDate   string `json:"createDate"`
}

// TokenBalance is a single token amount held by a wallet.
//
// Amount is kept as the decimal text sent by the backend so that no precision
// or formatting is lost; use Decimal for arithmetic.
type TokenBalance struct {
	Token      TokenInfo `json:"token"`
	Amount     string    `json:"amount"`
	UpdateDate string    `json:"updateDate"`
}

// Decimal parses Amount.
func (b TokenBalance) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(b.Amount)
}
