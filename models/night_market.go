// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NightMarketOffer is one discounted offer in the bonus market.
type NightMarketOffer struct {
	OfferID         string `json:"offer_id"`
	OriginalCost    int64  `json:"original_cost"`
	DiscountPercent int    `json:"discount_percent"`
	DiscountedCost  int64  `json:"discounted_cost"`
	Seen            bool   `json:"seen"`
}

// NightMarket is the bonus market state. Active is false when the vendor
// response carries no bonus section, which is a normal outcome.
type NightMarket struct {
	Active    bool
	Offers    []NightMarketOffer
	Remaining time.Duration
}
