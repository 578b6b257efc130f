// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

var (
	ErrInvalidOwnerID         = errors.New("invalid owner id")
	ErrEmptyAccountIdentifier = errors.New("account identifier is required")
	ErrEmptySecret            = errors.New("secret is required")
)

// Credential is the external game account linked to a Discord user.
//
// Secret holds the plaintext password and is populated only transiently,
// right after a read decrypted it or right before a write encrypts it. It is
// never serialized. SecretCiphertext is the value persisted by the store.
type Credential struct {
	OwnerID           int64  `json:"owner_id"`
	AccountIdentifier string `json:"account_identifier"`
	Secret            string `json:"-"`
	SecretCiphertext  []byte `json:"-"`
	Region            Region `json:"region"`
}

// NewCredential builds a Credential from user input, validating the
// required fields.
func NewCredential(ownerID int64, accountIdentifier, secret string, region Region) (Credential, error) {
	c := Credential{
		OwnerID:           ownerID,
		AccountIdentifier: strings.TrimSpace(accountIdentifier),
		Secret:            secret,
		Region:            region,
	}
	if err := c.Validate(); err != nil {
		return Credential{}, err
	}
	return c, nil
}

// Validate checks the plaintext form of the credential.
func (c Credential) Validate() error {
	if c.OwnerID <= 0 {
		return ErrInvalidOwnerID
	}
	if c.AccountIdentifier == "" {
		return ErrEmptyAccountIdentifier
	}
	if c.Secret == "" {
		return ErrEmptySecret
	}
	if !c.Region.Valid() {
		return ErrUnknownRegion
	}
	return nil
}

func (c Credential) TableName() string {
	return "valorant_login"
}
