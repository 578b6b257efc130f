package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cyphers-laptop/internal/crypto"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/store"
	"github.com/MKhiriev/cyphers-laptop/models"
)

type credentialStore struct {
	repository store.CredentialRepository
	cipher     crypto.SecretCipher

	logger *logger.Logger
}

func NewCredentialStore(repository store.CredentialRepository, cipher crypto.SecretCipher, logger *logger.Logger) CredentialStore {
	return &credentialStore{
		repository: repository,
		cipher:     cipher,
		logger:     logger,
	}
}

func (c *credentialStore) AddCredential(ctx context.Context, ownerID int64, account, secret string, region models.Region) (bool, error) {
	credential, err := models.NewCredential(ownerID, account, secret, region)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	credential.SecretCiphertext, err = c.cipher.Encrypt(credential.Secret)
	if err != nil {
		return false, fmt.Errorf("encrypt secret: %w", err)
	}

	err = c.repository.Create(ctx, credential)
	if errors.Is(err, store.ErrCredentialAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	logger.FromContext(ctx).Info().Str("func", "*credentialStore.AddCredential").
		Int64("owner_id", ownerID).
		Str("account", credential.AccountIdentifier).
		Msg("credential stored")
	return true, nil
}

func (c *credentialStore) GetByOwner(ctx context.Context, ownerID int64) (models.Credential, error) {
	credential, err := c.repository.FindByOwner(ctx, ownerID)
	if err != nil {
		return models.Credential{}, mapStoreError(err)
	}
	return c.decrypt(credential)
}

func (c *credentialStore) GetByAccountIdentifier(ctx context.Context, account string) (models.Credential, error) {
	credential, err := c.repository.FindByAccount(ctx, account)
	if err != nil {
		return models.Credential{}, mapStoreError(err)
	}
	return c.decrypt(credential)
}

func (c *credentialStore) UpdatePassword(ctx context.Context, account, newSecret string) (bool, error) {
	if newSecret == "" {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrEmptySecret)
	}

	ciphertext, err := c.cipher.Encrypt(newSecret)
	if err != nil {
		return false, fmt.Errorf("encrypt secret: %w", err)
	}

	err = c.repository.UpdateSecret(ctx, account, ciphertext)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *credentialStore) DeleteByOwner(ctx context.Context, ownerID int64) error {
	return c.repository.DeleteByOwner(ctx, ownerID)
}

func (c *credentialStore) decrypt(credential models.Credential) (models.Credential, error) {
	secret, err := c.cipher.Decrypt(credential.SecretCiphertext)
	if err != nil {
		c.logger.Err(err).Str("func", "*credentialStore.decrypt").
			Int64("owner_id", credential.OwnerID).
			Msg("error decrypting stored secret")
		return models.Credential{}, fmt.Errorf("decrypt secret: %w", err)
	}
	credential.Secret = secret
	return credential, nil
}
