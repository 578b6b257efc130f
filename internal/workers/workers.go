package workers

import (
	"context"

	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the jobs enabled in cfg.
func NewWorkers(services *service.Services, cfg *config.StructuredConfig, log *logger.Logger) *Workers {
	w := &Workers{}
	if !cfg.Workers.Reminder.Disabled {
		w.workers = append(w.workers, NewReminderScheduler(services.ReminderService, cfg.Workers.Reminder, log))
	}
	return w
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
