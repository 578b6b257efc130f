// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/models"
)

// credentialRepository is the SQL implementation of [CredentialRepository]
// over the valorant_login table.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// Create relies on ON CONFLICT DO NOTHING covering both the owner primary key
// and the username unique constraint, so a conflict leaves zero rows affected
// instead of raising. A unique violation raised anyway (older engines) maps
// to the same sentinel.
func (r *credentialRepository) Create(ctx context.Context, credential models.Credential) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, insertCredential,
		credential.OwnerID, credential.AccountIdentifier, credential.SecretCiphertext, string(credential.Region))
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrCredentialAlreadyExists
		}
		log.Err(err).Str("func", "*credentialRepository.Create").Msg("error inserting credential")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Create").Msg("error reading rows affected")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialAlreadyExists
	}

	return nil
}

func (r *credentialRepository) FindByOwner(ctx context.Context, ownerID int64) (models.Credential, error) {
	return r.findOne(ctx, "*credentialRepository.FindByOwner", findCredentialByOwner, ownerID)
}

func (r *credentialRepository) FindByAccount(ctx context.Context, accountIdentifier string) (models.Credential, error) {
	return r.findOne(ctx, "*credentialRepository.FindByAccount", findCredentialByAccount, accountIdentifier)
}

func (r *credentialRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var (
		credential models.Credential
		region     string
	)
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, arg).
			Scan(&credential.OwnerID, &credential.AccountIdentifier, &credential.SecretCiphertext, &region)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting credential")
		return models.Credential{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	credential.Region = models.Region(region)
	return credential, nil
}

func (r *credentialRepository) UpdateSecret(ctx context.Context, accountIdentifier string, ciphertext []byte) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateCredentialSecret, ciphertext, accountIdentifier)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.UpdateSecret").Msg("error updating credential secret")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func (r *credentialRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	if _, err := r.db.ExecContext(ctx, deleteCredentialByOwner, ownerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.DeleteByOwner").Msg("error deleting credential")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}
