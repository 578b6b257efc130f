package store

import "github.com/MKhiriev/cyphers-laptop/internal/logger"

// Storages aggregates every repository backed by one database.
type Storages struct {
	CredentialRepository CredentialRepository
	StorefrontRepository StorefrontRepository
	ReminderRepository   ReminderRepository
	WishlistRepository   WishlistRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CredentialRepository: NewCredentialRepository(db, log),
		StorefrontRepository: NewStorefrontRepository(db, log),
		ReminderRepository:   NewReminderRepository(db, log),
		WishlistRepository:   NewWishlistRepository(db, log),
	}
}
