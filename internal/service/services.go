package service

import (
	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/crypto"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/metrics"
	"github.com/MKhiriev/cyphers-laptop/internal/store"
	"github.com/MKhiriev/cyphers-laptop/internal/validators"
)

type Services struct {
	CredentialStore CredentialStore
	AuthService     AuthService
	StorefrontCache StorefrontCache
	ReminderService ReminderService
	Commands        Commands
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cipher crypto.SecretCipher, gate Gate,
	cfg *config.StructuredConfig, rec metrics.Recorder, logger *logger.Logger) *Services {
	credentials := NewCredentialStore(storages.CredentialRepository, cipher, logger)
	auth := NewAuthService(adapters.Authenticator, logger)
	cache := NewStorefrontCache(storages.StorefrontRepository, adapters.StorefrontGateway, rec, logger)

	reminders := NewReminderService(ReminderDeps{
		Reminders:   storages.ReminderRepository,
		Storefronts: storages.StorefrontRepository,
		Wishlist:    storages.WishlistRepository,
		Credentials: credentials,
		Auth:        auth,
		Cache:       cache,
		Notifier:    adapters.Notifier,
		Ops:         adapters.OpsReporter,
		Metrics:     rec,
	}, cfg, logger)

	commands := NewCommands(CommandDeps{
		Credentials: credentials,
		Auth:        auth,
		Cache:       cache,
		Reminders:   reminders,
		Gateway:     adapters.StorefrontGateway,
		Wishlists:   storages.WishlistRepository,
		Validator:   validators.NewCommandValidator(),
		Gate:        gate,
	}, cfg.App.Limited, logger)

	return &Services{
		CredentialStore: credentials,
		AuthService:     auth,
		StorefrontCache: cache,
		ReminderService: reminders,
		Commands:        commands,
	}
}
