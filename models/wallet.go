// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Currency is a vendor currency identifier.
type Currency string

const (
	CurrencyValorantPoints  Currency = "85ad13f7-3d1b-5128-9eb2-7cd8ee0b5741"
	CurrencyRadianitePoints Currency = "e59aa87c-4cbf-517a-5983-6e81511be9b7"
	CurrencyKingdomCredits  Currency = "85ca954a-41f2-ce94-9b45-8ca3dd39a00d"
)

var currencyNames = map[Currency]string{
	CurrencyValorantPoints:  "Valorant Points",
	CurrencyRadianitePoints: "Radianite Points",
	CurrencyKingdomCredits:  "Kingdom Credits",
}

// Name returns the display name of a known currency, or the raw id.
func (c Currency) Name() string {
	if n, ok := currencyNames[c]; ok {
		return n
	}
	return string(c)
}

// WalletBalance maps currency to balance.
type WalletBalance map[Currency]int64

// Get returns the balance for c, zero when the wallet has no such entry.
func (w WalletBalance) Get(c Currency) int64 {
	return w[c]
}
