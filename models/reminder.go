// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ReminderSubscription is a user's opt-in to the daily store reminder.
type ReminderSubscription struct {
	OwnerID int64 `json:"owner_id"`
	Enabled bool  `json:"enabled"`
}

// NewReminderSubscription returns the default, disabled subscription.
func NewReminderSubscription(ownerID int64) (ReminderSubscription, error) {
	if ownerID <= 0 {
		return ReminderSubscription{}, ErrInvalidOwnerID
	}
	return ReminderSubscription{OwnerID: ownerID}, nil
}

func (s ReminderSubscription) TableName() string {
	return "store_reminder"
}

// ReminderOutcome is the result of processing one subscriber in a pass.
type ReminderOutcome string

const (
	OutcomeSkipped        ReminderOutcome = "skipped"
	OutcomeUnreachable    ReminderOutcome = "unreachable"
	OutcomeNoCredential   ReminderOutcome = "no_credential"
	OutcomeAuthFailed     ReminderOutcome = "auth_failed"
	OutcomeRateLimited    ReminderOutcome = "rate_limited"
	OutcomeMFARequired    ReminderOutcome = "mfa_required"
	OutcomeNotified       ReminderOutcome = "notified"
	OutcomeBlocked        ReminderOutcome = "blocked"
	OutcomeSendFailed     ReminderOutcome = "send_failed"
	OutcomeUnexpectedFail ReminderOutcome = "unexpected_error"
)

// Disables reports whether the outcome force-disables the subscription.
func (o ReminderOutcome) Disables() bool {
	switch o {
	case OutcomeNoCredential, OutcomeAuthFailed, OutcomeRateLimited, OutcomeMFARequired, OutcomeBlocked:
		return true
	}
	return false
}

// PassReport summarises one reminder pass.
type PassReport struct {
	RunID       string
	StartedAt   time.Time
	CompletedAt time.Time
	Outcomes    map[int64]ReminderOutcome
	HadErrors   bool
}

// Count returns how many subscribers ended with outcome o.
func (r PassReport) Count(o ReminderOutcome) int {
	n := 0
	for _, v := range r.Outcomes {
		if v == o {
			n++
		}
	}
	return n
}

// Heartbeat is the operational record emitted after every pass.
type Heartbeat struct {
	Service     string
	CompletedAt time.Time
	HadErrors   bool
	Processed   int
	ErrorCount  int
}

// Recipient is a resolved direct-message channel for a Discord user.
type Recipient struct {
	OwnerID   int64
	ChannelID string
}

// Notification is a plain direct message. Formatting beyond text and a
// title is the chat layer's concern.
type Notification struct {
	Title string
	Body  string
}
