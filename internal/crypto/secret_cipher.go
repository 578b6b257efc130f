// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyDerivationSalt domain-separates the credential key from any other key
// derived from the same APP_SECRET_KEY.
var keyDerivationSalt = []byte("cyphers-laptop/credential-secret/v1")

// aesGCMCipher is the AES-256-GCM implementation of [SecretCipher].
type aesGCMCipher struct {
	aead cipher.AEAD
}

// NewSecretCipher derives a 256-bit key from secretKey with Argon2id and
// returns a [SecretCipher] sealing with AES-256-GCM.
//
// Argon2id parameters follow OWASP (2024): 1 iteration, 64 MiB, 4 threads.
// Derivation happens once at startup.
func NewSecretCipher(secretKey string) (SecretCipher, error) {
	if secretKey == "" {
		return nil, ErrEmptySecretKey
	}

	key := argon2.IDKey([]byte(secretKey), keyDerivationSalt, 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating block cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error creating gcm: %w", err)
	}

	return &aesGCMCipher{aead: aead}, nil
}

// Encrypt implements [SecretCipher]: blob = nonce ‖ ciphertext.
func (c *aesGCMCipher) Encrypt(plaintext string) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("error generating nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return append(nonce, sealed...), nil
}

// Decrypt implements [SecretCipher].
func (c *aesGCMCipher) Decrypt(blob []byte) (string, error) {
	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize+c.aead.Overhead() {
		return "", ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
