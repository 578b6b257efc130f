// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthSession is the result of one successful vendor handshake.
//
// The three tokens are produced together and are valid only for the call
// chain that obtained them. A session is never persisted and never reused
// across commands.
type AuthSession struct {
	BearerToken      string `json:"-"`
	EntitlementToken string `json:"-"`
	ExternalUserID   string `json:"-"`
}

// Complete reports whether every part of the session is populated.
func (s AuthSession) Complete() bool {
	return s.BearerToken != "" && s.EntitlementToken != "" && s.ExternalUserID != ""
}

// AuthRequest carries the plaintext credential for one handshake attempt.
// MFACode is empty on the first attempt.
type AuthRequest struct {
	AccountIdentifier string
	Secret            string
	MFACode           string
}
