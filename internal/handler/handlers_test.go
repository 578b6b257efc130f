package handler

import (
	"testing"

	"github.com/MKhiriev/cyphers-laptop/internal/app"
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_WithAddress(t *testing.T) {
	h, err := NewHandlers(app.NewLifecycle(logger.Nop()), prometheus.NewRegistry(), models.AppBuildInfo{}, config.Server{HTTPAddress: ":9100"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that an empty address is rejected with
// errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(app.NewLifecycle(logger.Nop()), prometheus.NewRegistry(), models.AppBuildInfo{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":9100"}

	h1, err1 := NewHandlers(nil, prometheus.NewRegistry(), models.AppBuildInfo{}, cfg, logger.Nop())
	h2, err2 := NewHandlers(nil, prometheus.NewRegistry(), models.AppBuildInfo{}, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
