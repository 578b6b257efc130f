// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SECRET_KEY": "secret",
		"APP_LOG_LEVEL":  "warn",
		"APP_LIMITED":    "true",
		"APP_VERSION":    "1.2.3",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:laptop.db",

		"VENDOR_AUTH_URL":         "https://auth.example",
		"VENDOR_ENTITLEMENTS_URL": "https://ent.example",
		"VENDOR_STOREFRONT_URL":   "https://pd.%s.example",
		"VENDOR_CLIENT_VERSION":   "release-1",
		"VENDOR_CLIENT_PLATFORM":  "cGM=",
		"VENDOR_REQUEST_TIMEOUT":  "20s",
		"VENDOR_AUTH_RATE":        "0.5",
		"VENDOR_AUTH_BURST":       "2",

		"DISCORD_API_URL":         "https://discord.example/api",
		"DISCORD_BOT_TOKEN":       "bot",
		"DISCORD_OPS_WEBHOOK_URL": "https://discord.example/hook",
		"DISCORD_REQUEST_TIMEOUT": "5s",
		"DISCORD_RETRY_COUNT":     "1",
		"DISCORD_RETRY_MAX_WAIT":  "2s",

		"SERVER_ADDRESS":          "localhost:9000",
		"SERVER_SHUTDOWN_TIMEOUT": "3s",

		// Workers has nested prefixes: WORKERS_ + REMINDER_
		"WORKERS_REMINDER_DISABLED":           "true",
		"WORKERS_REMINDER_INTERVAL":           "12h",
		"WORKERS_REMINDER_ANCHOR":             "07:45",
		"WORKERS_REMINDER_SUBSCRIBER_TIMEOUT": "45s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "secret", cfg.App.SecretKey)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.True(t, cfg.App.Limited)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:laptop.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "https://auth.example", cfg.Vendor.AuthURL)
	assert.Equal(t, "https://ent.example", cfg.Vendor.EntitlementsURL)
	assert.Equal(t, "https://pd.%s.example", cfg.Vendor.StorefrontURL)
	assert.Equal(t, "release-1", cfg.Vendor.ClientVersion)
	assert.Equal(t, "cGM=", cfg.Vendor.ClientPlatform)
	assert.Equal(t, 20*time.Second, cfg.Vendor.RequestTimeout)
	assert.InDelta(t, 0.5, cfg.Vendor.AuthRate, 1e-9)
	assert.Equal(t, 2, cfg.Vendor.AuthBurst)

	assert.Equal(t, "https://discord.example/api", cfg.Discord.APIURL)
	assert.Equal(t, "bot", cfg.Discord.BotToken)
	assert.Equal(t, "https://discord.example/hook", cfg.Discord.OpsWebhookURL)
	assert.Equal(t, 5*time.Second, cfg.Discord.RequestTimeout)
	assert.Equal(t, 1, cfg.Discord.RetryCount)
	assert.Equal(t, 2*time.Second, cfg.Discord.RetryMaxWait)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)

	assert.True(t, cfg.Workers.Reminder.Disabled)
	assert.Equal(t, 12*time.Hour, cfg.Workers.Reminder.Interval)
	assert.Equal(t, "07:45", cfg.Workers.Reminder.Anchor)
	assert.Equal(t, 45*time.Second, cfg.Workers.Reminder.SubscriberTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SECRET_KEY": "only-secret",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only-secret", cfg.App.SecretKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.Reminder.Interval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_REMINDER_INTERVAL": "daily",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
