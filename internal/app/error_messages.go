// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-level pieces shared by the bot
// process and the operator CLI: the startup lifecycle gate and the
// human-readable messages shown to chat users.
//
// All Msg* constants are shown verbatim to the user who ran a command.
package app

import (
	"errors"

	"github.com/MKhiriev/cyphers-laptop/internal/service"
	"github.com/MKhiriev/cyphers-laptop/internal/validators"
)

const (
	// MsgNotReady is shown while migrations and the schema check are still
	// running.
	MsgNotReady = "Cypher's Laptop is still starting up. Try again in a few seconds."

	// MsgNotLoggedIn is shown when a command needs a linked account.
	MsgNotLoggedIn = "You do not have a Riot Games account logged in in Cypher's Laptop."

	// MsgAlreadyLoggedIn is shown when login is used with an account linked.
	MsgAlreadyLoggedIn = "You are already logged in. Log out first to link a different account."

	// MsgAccountTaken is shown when the account belongs to another user.
	MsgAccountTaken = "This Riot Games account is already linked to another Discord user."

	// MsgInvalidCredentials is shown when the vendor rejected the password.
	MsgInvalidCredentials = "Riot Games rejected your username or password."

	// MsgRateLimited is shown when the identity service throttled the login.
	MsgRateLimited = "Riot Games is rate limiting logins right now. Try again in a few minutes."

	// MsgMFARequired asks the user for the code sent by the vendor.
	MsgMFARequired = "Your account has two-factor authentication enabled. Enter the code Riot Games sent you."

	// MsgUpstreamData is shown when the vendor answered without the data.
	MsgUpstreamData = "Riot Games responded but did not provide any information about your store. Try again shortly."

	// MsgUpstreamUnavailable is shown when the vendor could not be reached.
	MsgUpstreamUnavailable = "Cypher's Laptop could not reach Riot Games. Try again shortly."

	// MsgCacheMiss is shown for historical dates that were never cached.
	MsgCacheMiss = "Cypher's Laptop has no record of your store for that day."

	// MsgLimitedMode is shown for vendor-facing commands in limited mode.
	MsgLimitedMode = "Cypher's Laptop is running in limited mode. Only stores that were already fetched today can be shown."

	MsgInvalidMFACode  = "The two-factor code must be 6 digits."
	MsgInvalidAccount  = "That username does not look right."
	MsgInvalidSecret   = "That password does not look right."
	MsgInvalidRegion   = "Pick one of the supported regions."
	MsgInvalidOfferID  = "That is not a skin Cypher's Laptop knows about."
	MsgInvalidHistory  = "Pick a date range of at most one year, with the start before the end."
	MsgInvalidDataSent = "Some of the values you entered are not valid."

	// MsgInternalError is shown for anything unexpected.
	MsgInternalError = "Something went wrong on our side. The developer has been notified."
)

type errorMessage struct {
	err error
	msg string
}

// errorMessages is ordered: validator details win over the generic
// ErrInvalidInput that wraps them.
var errorMessages = []errorMessage{
	{ErrNotReady, MsgNotReady},

	{validators.ErrInvalidMFACode, MsgInvalidMFACode},
	{validators.ErrInvalidAccount, MsgInvalidAccount},
	{validators.ErrInvalidSecret, MsgInvalidSecret},
	{validators.ErrInvalidRegion, MsgInvalidRegion},
	{validators.ErrInvalidOfferID, MsgInvalidOfferID},
	{validators.ErrInvalidHistoryWindow, MsgInvalidHistory},
	{service.ErrInvalidInput, MsgInvalidDataSent},

	{service.ErrNotLoggedIn, MsgNotLoggedIn},
	{service.ErrAlreadyLoggedIn, MsgAlreadyLoggedIn},
	{service.ErrAccountTaken, MsgAccountTaken},
	{service.ErrInvalidCredentials, MsgInvalidCredentials},
	{service.ErrRateLimited, MsgRateLimited},
	{service.ErrMFARequired, MsgMFARequired},
	{service.ErrUpstreamData, MsgUpstreamData},
	{service.ErrUpstreamUnavailable, MsgUpstreamUnavailable},
	{service.ErrCacheMiss, MsgCacheMiss},
	{service.ErrLimitedMode, MsgLimitedMode},
}

// UserMessage returns the text shown to the user for err. It returns an
// empty string for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgInternalError
}
