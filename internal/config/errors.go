package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing application settings
	// (for example, an empty secret key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVendorConfigs indicates missing vendor endpoints, a
	// storefront URL without a region placeholder, or a zero timeout.
	ErrInvalidVendorConfigs = errors.New("invalid vendor configuration")
	// ErrInvalidDiscordConfigs indicates a missing API URL or bot token.
	ErrInvalidDiscordConfigs = errors.New("invalid discord configuration")
	// ErrInvalidWorkerConfigs indicates invalid reminder settings
	// (for example, zero interval or an unparsable anchor).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
