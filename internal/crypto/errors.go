package crypto

import "errors"

var (
	ErrEmptySecretKey     = errors.New("secret key is empty")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecryptionFailed   = errors.New("decryption failed")
)
