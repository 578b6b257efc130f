package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_cipher_mock.go -package=mock

// SecretCipher encrypts account passwords before they reach storage and
// decrypts them right before an authentication attempt.
//
// The cipher holds no per-user state: every call is independent, and the
// plaintext it returns is owned by the caller for the lifetime of one call
// chain.
type SecretCipher interface {
	// Encrypt seals plaintext and returns nonce || ciphertext.
	// A fresh random nonce is used on every call, so encrypting the same
	// plaintext twice yields different blobs.
	Encrypt(plaintext string) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. It fails with
	// ErrDecryptionFailed when the blob was sealed under a different key or
	// has been tampered with.
	Decrypt(blob []byte) (string, error)
}
