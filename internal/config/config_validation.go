// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// AnchorLayout is the layout of [Reminder.Anchor].
const AnchorLayout = "15:04"

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return fmt.Errorf("%w: secret key is required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: dsn is required", ErrInvalidStorageConfigs)
	}

	if cfg.Vendor.AuthURL == "" || cfg.Vendor.EntitlementsURL == "" {
		return fmt.Errorf("%w: auth endpoints are required", ErrInvalidVendorConfigs)
	}
	if !strings.Contains(cfg.Vendor.StorefrontURL, "%s") {
		return fmt.Errorf("%w: storefront url needs a region placeholder", ErrInvalidVendorConfigs)
	}
	if cfg.Vendor.RequestTimeout <= 0 || cfg.Vendor.AuthRate <= 0 {
		return fmt.Errorf("%w: timeout and auth rate must be positive", ErrInvalidVendorConfigs)
	}

	if cfg.Discord.APIURL == "" || cfg.Discord.BotToken == "" {
		return fmt.Errorf("%w: api url and bot token are required", ErrInvalidDiscordConfigs)
	}

	r := cfg.Workers.Reminder
	if r.Interval <= 0 || r.SubscriberTimeout <= 0 {
		return fmt.Errorf("%w: interval and subscriber timeout must be positive", ErrInvalidWorkerConfigs)
	}
	if _, err := time.Parse(AnchorLayout, r.Anchor); err != nil {
		return fmt.Errorf("%w: anchor %q: %v", ErrInvalidWorkerConfigs, r.Anchor, err)
	}

	return nil
}

// AnchorOffset returns the anchor as an offset from midnight UTC.
func (r Reminder) AnchorOffset() time.Duration {
	t, err := time.Parse(AnchorLayout, r.Anchor)
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}
