package adapter

import (
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/metrics"
)

// Adapters aggregates every outbound integration of the bot.
type Adapters struct {
	Authenticator     Authenticator
	StorefrontGateway StorefrontGateway
	Notifier          Notifier
	OpsReporter       OpsReporter
}

func NewAdapters(cfg *config.StructuredConfig, rec metrics.Recorder, log *logger.Logger) *Adapters {
	return &Adapters{
		Authenticator:     NewAuthClient(cfg.Vendor, rec, log),
		StorefrontGateway: NewStorefrontGateway(cfg.Vendor, rec, log),
		Notifier:          NewDiscordNotifier(cfg.Discord, log),
		OpsReporter:       NewOpsReporter(cfg.Discord, log),
	}
}
