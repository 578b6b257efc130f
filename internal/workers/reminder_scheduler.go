// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/service"
	"github.com/MKhiriev/cyphers-laptop/models"
)

const defaultReminderInterval = 24 * time.Hour

// ReminderScheduler runs the daily reminder pass. The first pass is aligned
// to the configured anchor unless nothing has been cached for today yet, in
// which case it runs immediately. Later passes follow every interval.
type ReminderScheduler struct {
	reminders service.ReminderService
	interval  time.Duration
	anchor    time.Duration

	now    func() time.Time
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReminderScheduler(reminders service.ReminderService, cfg config.Reminder, log *logger.Logger) *ReminderScheduler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultReminderInterval
	}

	return &ReminderScheduler{
		reminders: reminders,
		interval:  interval,
		anchor:    cfg.AnchorOffset(),
		now:       time.Now,
		logger:    log,
	}
}

// Start implements Worker. It stops a previously started loop first.
func (s *ReminderScheduler) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.loop(jobCtx)
	}()
}

// Stop implements Worker. A pass in progress observes the cancellation
// between subscribers.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *ReminderScheduler) loop(ctx context.Context) {
	log := s.logger.WithField("worker", "reminder")

	bootstrap, err := s.reminders.NeedsBootstrap(ctx)
	if err != nil {
		log.Err(err).Str("func", "*ReminderScheduler.loop").Msg("error checking today's cache, waiting for anchor")
	}

	if !bootstrap {
		wait := NextRun(s.now(), s.anchor).Sub(s.now())
		log.Info().Str("func", "*ReminderScheduler.loop").Dur("wait", wait).Msg("first reminder pass scheduled")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *ReminderScheduler) runPass(ctx context.Context) {
	report, err := s.reminders.RunPass(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*ReminderScheduler.runPass").Str("run_id", report.RunID).Msg("reminder pass failed to start")
	}
}

// NextRun returns the first instant strictly after now that lies anchor
// past a UTC midnight.
func NextRun(now time.Time, anchor time.Duration) time.Time {
	next := models.CalendarDate(now).Add(anchor)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
