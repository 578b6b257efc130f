package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/cyphers-laptop/internal/logger"
)

// ErrNotReady is returned by every command until startup has finished.
var ErrNotReady = errors.New("application is not ready")

// StartupStep is one named stage of the startup sequence.
type StartupStep struct {
	Name string
	Run  func(ctx context.Context) error
}

// Lifecycle gates commands until the startup sequence completes. The zero
// value is not ready.
type Lifecycle struct {
	ready  atomic.Bool
	logger *logger.Logger
}

func NewLifecycle(logger *logger.Logger) *Lifecycle {
	return &Lifecycle{logger: logger}
}

// Start runs steps in order and marks the lifecycle ready once all of them
// succeeded. The first failing step aborts the sequence.
func (l *Lifecycle) Start(ctx context.Context, steps ...StartupStep) error {
	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			l.logger.Err(err).Str("func", "*Lifecycle.Start").Str("step", step.Name).Msg("startup step failed")
			return fmt.Errorf("startup step %q: %w", step.Name, err)
		}
		l.logger.Debug().Str("func", "*Lifecycle.Start").Str("step", step.Name).Msg("startup step done")
	}

	l.MarkReady()
	l.logger.Info().Str("func", "*Lifecycle.Start").Msg("application ready")
	return nil
}

func (l *Lifecycle) MarkReady() {
	l.ready.Store(true)
}

// Ready returns ErrNotReady until startup completed.
func (l *Lifecycle) Ready() error {
	if !l.ready.Load() {
		return ErrNotReady
	}
	return nil
}
