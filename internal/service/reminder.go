// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/metrics"
	"github.com/MKhiriev/cyphers-laptop/internal/store"
	"github.com/MKhiriev/cyphers-laptop/internal/utils"
	"github.com/MKhiriev/cyphers-laptop/models"
)

// HeartbeatService is the service name reported after every reminder pass.
const HeartbeatService = "Daily Store Reminder"

const defaultSubscriberTimeout = time.Minute

// ReminderDeps groups the collaborators of the reminder service.
type ReminderDeps struct {
	Reminders   store.ReminderRepository
	Storefronts store.StorefrontRepository
	Wishlist    store.WishlistRepository

	Credentials CredentialStore
	Auth        AuthService
	Cache       StorefrontCache

	Notifier adapter.Notifier
	Ops      adapter.OpsReporter
	Metrics  metrics.Recorder
}

type reminderService struct {
	ReminderDeps

	subscriberTimeout time.Duration
	limited           bool

	runIDs utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewReminderService(deps ReminderDeps, cfg *config.StructuredConfig, logger *logger.Logger) ReminderService {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop()
	}

	timeout := cfg.Workers.Reminder.SubscriberTimeout
	if timeout <= 0 {
		timeout = defaultSubscriberTimeout
	}

	return &reminderService{
		ReminderDeps:      deps,
		subscriberTimeout: timeout,
		limited:           cfg.App.Limited,
		now:               time.Now,
		logger:            logger,
	}
}

func (r *reminderService) RunPass(ctx context.Context) (models.PassReport, error) {
	runID := r.runIDs.Generate()
	log := r.logger.WithField("run_id", runID)
	ctx = utils.WithTraceID(log.WithContext(ctx), runID)

	report := models.PassReport{
		RunID:     runID,
		StartedAt: r.now().UTC(),
		Outcomes:  make(map[int64]models.ReminderOutcome),
	}

	if r.limited {
		log.Warn().Str("func", "*reminderService.RunPass").Msg("limited mode is on, reminder pass skipped")
		report.CompletedAt = r.now().UTC()
		return report, nil
	}

	subscriptions, err := r.Reminders.List(ctx, true)
	if err != nil {
		log.Err(err).Str("func", "*reminderService.RunPass").Msg("error listing reminder subscriptions")
		r.Ops.ReportError(ctx, "Error while listing reminder subscriptions", err)
		report.HadErrors = true
		report.CompletedAt = r.now().UTC()
		r.heartbeat(ctx, report)
		return report, err
	}

	for _, sub := range subscriptions {
		if ctx.Err() != nil {
			log.Warn().Str("func", "*reminderService.RunPass").
				Int("remaining", len(subscriptions)-len(report.Outcomes)).
				Msg("reminder pass interrupted")
			break
		}

		outcome, err := r.processIsolated(ctx, sub.OwnerID)
		report.Outcomes[sub.OwnerID] = outcome
		r.Metrics.RecordReminderOutcome(string(outcome))

		if outcome == models.OutcomeUnexpectedFail {
			report.HadErrors = true
			log.Err(err).Str("func", "*reminderService.RunPass").
				Int64("owner_id", sub.OwnerID).
				Msg("error processing reminder subscriber")
			r.Ops.ReportError(ctx, fmt.Sprintf("Error while processing store for %d", sub.OwnerID), err)
		}
	}

	report.CompletedAt = r.now().UTC()
	r.Metrics.RecordPassDuration(report.CompletedAt.Sub(report.StartedAt))
	r.heartbeat(ctx, report)

	log.Info().Str("func", "*reminderService.RunPass").
		Int("processed", len(report.Outcomes)).
		Int("notified", report.Count(models.OutcomeNotified)).
		Bool("had_errors", report.HadErrors).
		Msg("reminder pass finished")
	return report, nil
}

// processIsolated runs one subscriber under its own deadline and turns a
// panic into an unexpected outcome.
func (r *reminderService) processIsolated(ctx context.Context, ownerID int64) (outcome models.ReminderOutcome, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.subscriberTimeout)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			outcome = models.OutcomeUnexpectedFail
			err = fmt.Errorf("%w: panic: %v", ErrUnexpected, p)
		}
	}()

	outcome, err = r.processSubscriber(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*reminderService.processIsolated").
			Int64("owner_id", ownerID).
			Str("outcome", string(outcome)).
			Msg("subscriber processed with error")
	}
	return outcome, err
}

func (r *reminderService) processSubscriber(ctx context.Context, ownerID int64) (models.ReminderOutcome, error) {
	log := logger.FromContext(ctx)

	recipient, err := r.Notifier.OpenDirectChannel(ctx, ownerID)
	switch {
	case errors.Is(err, adapter.ErrRecipientNotFound):
		return models.OutcomeUnreachable, nil
	case errors.Is(err, adapter.ErrRecipientBlocked):
		return r.disable(ctx, ownerID, models.OutcomeBlocked)
	case err != nil:
		return models.OutcomeUnexpectedFail, err
	}

	cred, err := r.Credentials.GetByOwner(ctx, ownerID)
	if errors.Is(err, ErrNotLoggedIn) {
		return r.disableAndNotify(ctx, recipient, models.OutcomeNoCredential)
	}
	if err != nil {
		return models.OutcomeUnexpectedFail, err
	}

	session, err := r.Auth.AuthenticateUser(ctx, cred, "")
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return r.disableAndNotify(ctx, recipient, models.OutcomeAuthFailed)
	case errors.Is(err, ErrRateLimited):
		return r.disableAndNotify(ctx, recipient, models.OutcomeRateLimited)
	case errors.Is(err, ErrMFARequired):
		return r.disableAndNotify(ctx, recipient, models.OutcomeMFARequired)
	case err != nil:
		return models.OutcomeUnexpectedFail, err
	}

	offers, err := r.Cache.GetOrFetch(ctx, StorefrontRequest{
		OwnerID:           ownerID,
		AccountIdentifier: cred.AccountIdentifier,
		Region:            cred.Region,
	}, func(context.Context) (models.AuthSession, error) {
		return session, nil
	})
	if err != nil {
		return models.OutcomeUnexpectedFail, err
	}

	wishlisted, err := r.Wishlist.List(ctx, ownerID, offers.OfferIDs...)
	if err != nil {
		log.Err(err).Str("func", "*reminderService.processSubscriber").
			Int64("owner_id", ownerID).
			Msg("error matching wishlist, sending reminder without it")
		wishlisted = nil
	}

	err = r.Notifier.Send(ctx, recipient, storeResetNotification(len(wishlisted)))
	switch {
	case errors.Is(err, adapter.ErrRecipientBlocked):
		return r.disable(ctx, ownerID, models.OutcomeBlocked)
	case err != nil:
		log.Err(err).Str("func", "*reminderService.processSubscriber").
			Int64("owner_id", ownerID).
			Msg("error sending store reminder")
		return models.OutcomeSendFailed, nil
	}
	return models.OutcomeNotified, nil
}

func (r *reminderService) disable(ctx context.Context, ownerID int64, outcome models.ReminderOutcome) (models.ReminderOutcome, error) {
	if err := r.Reminders.Disable(ctx, ownerID); err != nil {
		return models.OutcomeUnexpectedFail, fmt.Errorf("disable reminder: %w", err)
	}
	logger.FromContext(ctx).Info().Str("func", "*reminderService.disable").
		Int64("owner_id", ownerID).
		Str("outcome", string(outcome)).
		Msg("reminder force-disabled")
	return outcome, nil
}

// disableAndNotify turns the subscription off, then tells the user why. The
// message is best effort.
func (r *reminderService) disableAndNotify(ctx context.Context, recipient models.Recipient, outcome models.ReminderOutcome) (models.ReminderOutcome, error) {
	if _, err := r.disable(ctx, recipient.OwnerID, outcome); err != nil {
		return models.OutcomeUnexpectedFail, err
	}

	if err := r.Notifier.Send(ctx, recipient, disabledNotification(outcome)); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*reminderService.disableAndNotify").
			Int64("owner_id", recipient.OwnerID).
			Msg("could not tell user about disabled reminder")
	}
	return outcome, nil
}

func (r *reminderService) heartbeat(ctx context.Context, report models.PassReport) {
	hb := models.Heartbeat{
		Service:     HeartbeatService,
		CompletedAt: report.CompletedAt,
		HadErrors:   report.HadErrors,
		Processed:   len(report.Outcomes),
		ErrorCount:  report.Count(models.OutcomeUnexpectedFail),
	}
	// the heartbeat goes out even when the pass was interrupted
	if err := r.Ops.Heartbeat(context.WithoutCancel(ctx), hb); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderService.heartbeat").Msg("error sending heartbeat")
	}
}

func (r *reminderService) NeedsBootstrap(ctx context.Context) (bool, error) {
	n, err := r.Storefronts.CountForDate(ctx, models.CalendarDate(r.now()))
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (r *reminderService) Settings(ctx context.Context, ownerID int64) (models.ReminderSubscription, error) {
	return r.Reminders.GetOrCreate(ctx, ownerID)
}

func (r *reminderService) SetEnabled(ctx context.Context, ownerID int64, enabled bool) (models.ReminderSubscription, error) {
	if err := r.Reminders.SetEnabled(ctx, ownerID, enabled); err != nil {
		return models.ReminderSubscription{}, err
	}
	return models.ReminderSubscription{OwnerID: ownerID, Enabled: enabled}, nil
}

func storeResetNotification(wishlisted int) models.Notification {
	n := models.Notification{
		Title: "Your VALORANT store has reset",
		Body:  "Today's offers are in. Use /store to see them.",
	}
	switch wishlisted {
	case 0:
	case 1:
		n.Body += "\n1 skin from your wishlist is in today's store!"
	default:
		n.Body += fmt.Sprintf("\n%d skins from your wishlist are in today's store!", wishlisted)
	}
	return n
}

func disabledNotification(outcome models.ReminderOutcome) models.Notification {
	n := models.Notification{Title: "Store reminders turned off"}
	switch outcome {
	case models.OutcomeNoCredential:
		n.Body = "No account is linked to you anymore. Log in again and re-enable reminders with /reminders."
	case models.OutcomeAuthFailed:
		n.Body = "Your saved password was rejected. Update it with /update-password and re-enable reminders with /reminders."
	case models.OutcomeRateLimited:
		n.Body = "The login servers are rate limiting requests right now. Re-enable reminders with /reminders later."
	case models.OutcomeMFARequired:
		n.Body = "Your account asks for a two-factor code, which reminders cannot provide. Use /store to check your store manually."
	default:
		n.Body = "Reminders were turned off. Re-enable them with /reminders."
	}
	return n
}
