// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/crypto"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/metrics"
	"github.com/MKhiriev/cyphers-laptop/internal/service"
	"github.com/MKhiriev/cyphers-laptop/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Runtime is the fully wired object graph shared by the bot and laptopctl.
// Commands stay gated until Lifecycle.Start ran StartupSteps.
type Runtime struct {
	DB        *store.DB
	Lifecycle *Lifecycle
	Registry  *prometheus.Registry
	Services  *service.Services
}

func NewRuntime(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Runtime, error) {
	cipher, err := crypto.NewSecretCipher(cfg.App.SecretKey)
	if err != nil {
		log.Err(err).Str("func", "NewRuntime").Msg("error creating secret cipher")
		return nil, fmt.Errorf("error creating secret cipher: %w", err)
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.NewCollector(reg)

	lifecycle := NewLifecycle(log)
	services := service.NewServices(
		store.NewStorages(db, log),
		adapter.NewAdapters(cfg, rec, log),
		cipher,
		lifecycle,
		cfg,
		rec,
		log,
	)

	return &Runtime{
		DB:        db,
		Lifecycle: lifecycle,
		Registry:  reg,
		Services:  services,
	}, nil
}

// StartupSteps applies pending migrations and then verifies the schema.
func (r *Runtime) StartupSteps() []StartupStep {
	return []StartupStep{
		{Name: "migrate", Run: func(context.Context) error { return r.DB.Migrate() }},
		{Name: "schema", Run: r.DB.CheckSchema},
	}
}

func (r *Runtime) Close() error {
	return r.DB.Close()
}
