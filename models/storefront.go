// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OfferSlots is the number of daily rotating offers in a storefront.
const OfferSlots = 4

var (
	ErrInvalidOfferCount = errors.New("storefront must contain exactly 4 offers")
	ErrEmptyOfferID      = errors.New("offer id is required")
	ErrZeroStoreDate     = errors.New("store date is required")
)

// DailyOffers is what the vendor reports for today's storefront.
type DailyOffers struct {
	OfferIDs  []string
	Remaining time.Duration
}

// StorefrontEntry is one cached storefront for (OwnerID, Date).
//
// ExpiresAt is an absolute deadline fixed at fetch time as fetch time plus
// the vendor-reported remaining duration. Entries are immutable.
type StorefrontEntry struct {
	OwnerID   int64              `json:"owner_id"`
	Date      time.Time          `json:"store_date"`
	OfferIDs  [OfferSlots]string `json:"offer_ids"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// NewStorefrontEntry validates the offers and builds an entry for date.
// Offer ids are normalised to lower case, matching the vendor's catalog keys.
func NewStorefrontEntry(ownerID int64, date time.Time, offerIDs []string, expiresAt time.Time) (StorefrontEntry, error) {
	if ownerID <= 0 {
		return StorefrontEntry{}, ErrInvalidOwnerID
	}
	if date.IsZero() {
		return StorefrontEntry{}, ErrZeroStoreDate
	}
	if len(offerIDs) != OfferSlots {
		return StorefrontEntry{}, fmt.Errorf("%w: got %d", ErrInvalidOfferCount, len(offerIDs))
	}

	entry := StorefrontEntry{
		OwnerID:   ownerID,
		Date:      CalendarDate(date),
		ExpiresAt: expiresAt.UTC(),
	}
	for i, id := range offerIDs {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			return StorefrontEntry{}, ErrEmptyOfferID
		}
		entry.OfferIDs[i] = id
	}
	return entry, nil
}

// Remaining returns the time left until the storefront rotates, clamped at
// zero once the deadline has passed.
func (e StorefrontEntry) Remaining(now time.Time) time.Duration {
	d := e.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// Offers returns the offer ids as a slice.
func (e StorefrontEntry) Offers() []string {
	return append([]string(nil), e.OfferIDs[:]...)
}

func (e StorefrontEntry) TableName() string {
	return "cached_stores"
}

// CalendarDate truncates t to midnight UTC. The storefront rotates on the UTC
// day boundary, so every cache key uses this form.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StorefrontQuery carries what every regional storefront call needs: a
// fresh session, the account's region and the account identifier sent as
// the User-Agent.
type StorefrontQuery struct {
	Session           AuthSession
	Region            Region
	AccountIdentifier string
}

// HistoryRange selects the cached storefronts of one owner between two
// calendar dates, both inclusive.
type HistoryRange struct {
	OwnerID int64
	From    time.Time
	To      time.Time
}
