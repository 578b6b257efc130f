package http

import (
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/service"
	"github.com/MKhiriev/cyphers-laptop/models"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	gate     service.Gate
	gatherer prometheus.Gatherer
	build    models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(gate service.Gate, gatherer prometheus.Gatherer, build models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gate:     gate,
		gatherer: gatherer,
		build:    build,
		logger:   logger,
	}
}
