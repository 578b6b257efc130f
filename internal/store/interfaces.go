package store

import (
	"context"
	"time"

	"github.com/MKhiriev/cyphers-laptop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists linked vendor accounts. It stores and returns
// only the ciphertext form of the password; encryption is the caller's job.
type CredentialRepository interface {
	// Create inserts the credential. It returns ErrCredentialAlreadyExists,
	// without writing, when the owner already has a credential or the
	// account identifier belongs to any owner.
	Create(ctx context.Context, credential models.Credential) error

	// FindByOwner returns the owner's credential or ErrCredentialNotFound.
	FindByOwner(ctx context.Context, ownerID int64) (models.Credential, error)

	// FindByAccount returns the credential for an account identifier or
	// ErrCredentialNotFound.
	FindByAccount(ctx context.Context, accountIdentifier string) (models.Credential, error)

	// UpdateSecret overwrites the ciphertext for an account identifier. It
	// returns ErrCredentialNotFound when no row matched.
	UpdateSecret(ctx context.Context, accountIdentifier string, ciphertext []byte) error

	// DeleteByOwner hard-deletes the owner's credential. Deleting a missing
	// credential is not an error.
	DeleteByOwner(ctx context.Context, ownerID int64) error
}

// StorefrontRepository persists daily storefront snapshots keyed by
// (owner, store date).
type StorefrontRepository interface {
	// Find returns the entry for (ownerID, date) or ErrStorefrontNotFound.
	Find(ctx context.Context, ownerID int64, date time.Time) (models.StorefrontEntry, error)

	// InsertIfAbsent writes entry unless one already exists for its key.
	// It reports whether this call inserted the row; a conflicting row is
	// left untouched.
	InsertIfAbsent(ctx context.Context, entry models.StorefrontEntry) (bool, error)

	// CountForDate returns how many entries exist for date.
	CountForDate(ctx context.Context, date time.Time) (int, error)

	// History returns the owner's entries with dates in [from, to], newest
	// first. Zero bounds are open.
	History(ctx context.Context, ownerID int64, from, to time.Time) ([]models.StorefrontEntry, error)
}

// ReminderRepository persists reminder subscriptions.
type ReminderRepository interface {
	// GetOrCreate returns the owner's subscription, creating a disabled one
	// on first access.
	GetOrCreate(ctx context.Context, ownerID int64) (models.ReminderSubscription, error)

	// SetEnabled stores the owner's toggle, creating the row if needed.
	SetEnabled(ctx context.Context, ownerID int64, enabled bool) error

	// Disable turns the subscription off. A missing row is not an error.
	Disable(ctx context.Context, ownerID int64) error

	// List returns subscriptions in owner order. onlyEnabled narrows the
	// result to opted-in owners.
	List(ctx context.Context, onlyEnabled bool) ([]models.ReminderSubscription, error)
}

// WishlistRepository persists the offers an owner wants to be told about.
type WishlistRepository interface {
	Add(ctx context.Context, ownerID int64, offerID string) error
	Remove(ctx context.Context, ownerID int64, offerID string) error

	// List returns the wishlist. When offerIDs is non-empty only the
	// wishlisted ids among them are returned.
	List(ctx context.Context, ownerID int64, offerIDs ...string) ([]string, error)
}
