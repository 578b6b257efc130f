// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business operations of the bot: the
// encrypted credential store, vendor authentication, the once-per-day
// storefront cache, the daily reminder pass and the command facade the chat
// front-end calls.
//
// The on-demand commands and the scheduled reminder pass share the same
// AuthenticateUser and GetOrFetch operations, so both paths observe the
// same cache and error semantics.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cyphers-laptop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialStore persists one vendor credential per chat user. Secrets are
// encrypted before every write and decrypted on every read.
type CredentialStore interface {
	// AddCredential stores a new credential. It returns false and writes
	// nothing when the account is already linked to any user.
	AddCredential(ctx context.Context, ownerID int64, account, secret string, region models.Region) (bool, error)

	// GetByOwner returns the decrypted credential of ownerID or
	// [ErrNotLoggedIn].
	GetByOwner(ctx context.Context, ownerID int64) (models.Credential, error)

	// GetByAccountIdentifier returns the decrypted credential linked to
	// account or [ErrNotLoggedIn].
	GetByAccountIdentifier(ctx context.Context, account string) (models.Credential, error)

	// UpdatePassword re-encrypts and overwrites the secret of account. It
	// returns false when no credential is linked to account.
	UpdatePassword(ctx context.Context, account, newSecret string) (bool, error)

	// DeleteByOwner removes the credential of ownerID unconditionally.
	DeleteByOwner(ctx context.Context, ownerID int64) error
}

// AuthService turns a stored credential into a fresh vendor session.
type AuthService interface {
	// AuthenticateUser runs one handshake for cred. Sessions are never cached:
	// every call talks to the vendor.
	//
	// Errors: [ErrInvalidCredentials], [ErrRateLimited], [ErrMFARequired],
	// [ErrUpstreamUnavailable].
	AuthenticateUser(ctx context.Context, cred models.Credential, mfaCode string) (models.AuthSession, error)
}

// SessionFactory produces a session when the cache needs to reach the vendor.
type SessionFactory func(ctx context.Context) (models.AuthSession, error)

// StorefrontRequest identifies the storefront to look up.
type StorefrontRequest struct {
	OwnerID int64

	// AccountIdentifier is sent as the User-Agent on a vendor fetch.
	AccountIdentifier string
	Region            models.Region

	// ForDate is the calendar day to look up; zero means today (UTC).
	ForDate time.Time
}

// StorefrontCache serves daily storefronts, fetching each (owner, day) at
// most once.
type StorefrontCache interface {
	// GetOrFetch returns the cached offers for req with the remaining
	// validity recomputed against the current time. On a miss for today with
	// a non-nil factory it authenticates, fetches, stores and returns the
	// storefront; concurrent writers for the same key converge on the row
	// that was stored first. Any other miss returns [ErrCacheMiss].
	GetOrFetch(ctx context.Context, req StorefrontRequest, factory SessionFactory) (models.DailyOffers, error)

	// History returns the cached storefronts in the range, newest first.
	History(ctx context.Context, r models.HistoryRange) ([]models.StorefrontEntry, error)
}

// ReminderService owns reminder subscriptions and the daily reminder pass.
type ReminderService interface {
	// RunPass processes every enabled subscriber once. A failure while
	// processing one subscriber never aborts the pass. The returned error is
	// non-nil only when the pass could not start.
	RunPass(ctx context.Context) (models.PassReport, error)

	// NeedsBootstrap reports whether no storefront has been cached for today
	// yet, in which case the scheduler runs a pass immediately.
	NeedsBootstrap(ctx context.Context) (bool, error)

	// Settings returns the subscription of ownerID, creating a disabled one
	// on first access.
	Settings(ctx context.Context, ownerID int64) (models.ReminderSubscription, error)

	// SetEnabled turns reminders for ownerID on or off.
	SetEnabled(ctx context.Context, ownerID int64, enabled bool) (models.ReminderSubscription, error)
}

// Gate reports whether the process finished its startup sequence.
type Gate interface {
	Ready() error
}

// StoreView is what the store command renders.
type StoreView struct {
	Date       time.Time
	Region     models.Region
	OfferIDs   []string
	Remaining  time.Duration
	Wishlisted int
}

// Commands is the facade the chat front-end calls, one method per command.
// Every method returns service sentinel errors; app.UserMessage converts them
// into the text shown to the user.
type Commands interface {
	// Login links an account to ownerID after the vendor accepted the
	// password. mfaChallenged is true when the vendor asked for a second
	// factor; the credential is stored in that case too. region may be a
	// code or a display name.
	Login(ctx context.Context, ownerID int64, account, secret string, region models.Region, mfaCode string) (mfaChallenged bool, err error)
	Logout(ctx context.Context, ownerID int64) error

	// UpdatePassword validates newSecret against the vendor before storing it.
	UpdatePassword(ctx context.Context, ownerID int64, newSecret, mfaCode string) error

	// Store returns the storefront of ownerID for date; zero date means today.
	Store(ctx context.Context, ownerID int64, mfaCode string, date time.Time) (StoreView, error)
	Balance(ctx context.Context, ownerID int64, mfaCode string) (models.WalletBalance, error)
	NightMarket(ctx context.Context, ownerID int64, mfaCode string) (models.NightMarket, error)

	ReminderSettings(ctx context.Context, ownerID int64) (models.ReminderSubscription, error)
	ToggleReminder(ctx context.Context, ownerID int64) (models.ReminderSubscription, error)

	AddToWishlist(ctx context.Context, ownerID int64, offerID string) error
	RemoveFromWishlist(ctx context.Context, ownerID int64, offerID string) error
	Wishlist(ctx context.Context, ownerID int64) ([]string, error)

	History(ctx context.Context, ownerID int64, from, to time.Time) ([]models.StorefrontEntry, error)
}
