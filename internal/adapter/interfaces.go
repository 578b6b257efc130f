// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP integrations: the game vendor's
// identity service ([Authenticator]), its regional storefront API
// ([StorefrontGateway]), the chat platform's direct-message API ([Notifier])
// and the operator webhook ([OpsReporter]).
//
// Every implementation translates transport and protocol failures into the
// sentinel errors defined in errors.go so callers can branch with
// [errors.Is] without knowing any wire detail.
package adapter

import (
	"context"

	"github.com/MKhiriev/cyphers-laptop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Authenticator performs the vendor identity handshake.
type Authenticator interface {
	// Authorize runs one complete handshake for req.AccountIdentifier and
	// req.Secret. When the vendor challenges for a second factor and
	// req.MFACode is empty, [ErrMFARequired] is returned; calling again with
	// the code re-submits the password and the code in a fresh handshake.
	//
	// Errors: [ErrInvalidCredentials], [ErrRateLimited], [ErrMFARequired],
	// anything else wraps [ErrTransport]. A returned session is always
	// complete. Nothing is persisted.
	Authorize(ctx context.Context, req models.AuthRequest) (models.AuthSession, error)
}

// StorefrontGateway reads an account's shop state from the regional
// storefront API.
type StorefrontGateway interface {
	// FetchDailyOffers returns the four featured offer ids (lowercased, in
	// vendor order) and the time left until rotation. A response without
	// exactly four offers yields [ErrUpstreamData].
	FetchDailyOffers(ctx context.Context, q models.StorefrontQuery) (models.DailyOffers, error)

	// FetchWallet returns the balance per currency.
	FetchWallet(ctx context.Context, q models.StorefrontQuery) (models.WalletBalance, error)

	// FetchNightMarket returns the discounted bonus offers. A storefront
	// without a bonus section is a normal outcome reported as
	// NightMarket.Active == false.
	FetchNightMarket(ctx context.Context, q models.StorefrontQuery) (models.NightMarket, error)
}

// Notifier delivers direct messages to chat users.
type Notifier interface {
	// OpenDirectChannel resolves the DM channel for ownerID.
	// Returns [ErrRecipientNotFound] if the user cannot be resolved.
	OpenDirectChannel(ctx context.Context, ownerID int64) (models.Recipient, error)

	// Send posts n to the recipient's channel. Returns [ErrRecipientBlocked]
	// when the user does not accept messages from the bot.
	Send(ctx context.Context, recipient models.Recipient, n models.Notification) error
}

// OpsReporter publishes operational events to the operator channel.
type OpsReporter interface {
	// ReportError publishes message and err. Delivery failures are logged and
	// never returned.
	ReportError(ctx context.Context, message string, err error)

	// Heartbeat publishes the completion record of a reminder pass.
	Heartbeat(ctx context.Context, hb models.Heartbeat) error
}
