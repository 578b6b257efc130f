// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/mock"
	"github.com/MKhiriev/cyphers-laptop/internal/service"
	"github.com/MKhiriev/cyphers-laptop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reminderHarness struct {
	reminders   *mock.MockReminderRepository
	storefronts *mock.MockStorefrontRepository
	wishlist    *mock.MockWishlistRepository
	credentials *mock.MockCredentialStore
	auth        *mock.MockAuthService
	cache       *mock.MockStorefrontCache
	notifier    *mock.MockNotifier
	ops         *mock.MockOpsReporter

	svc service.ReminderService
}

func newReminderHarness(t *testing.T, mutate ...func(*config.StructuredConfig)) *reminderHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &reminderHarness{
		reminders:   mock.NewMockReminderRepository(ctrl),
		storefronts: mock.NewMockStorefrontRepository(ctrl),
		wishlist:    mock.NewMockWishlistRepository(ctrl),
		credentials: mock.NewMockCredentialStore(ctrl),
		auth:        mock.NewMockAuthService(ctrl),
		cache:       mock.NewMockStorefrontCache(ctrl),
		notifier:    mock.NewMockNotifier(ctrl),
		ops:         mock.NewMockOpsReporter(ctrl),
	}

	cfg := &config.StructuredConfig{}
	cfg.Workers.Reminder.SubscriberTimeout = time.Second
	for _, m := range mutate {
		m(cfg)
	}

	h.svc = service.NewReminderService(service.ReminderDeps{
		Reminders:   h.reminders,
		Storefronts: h.storefronts,
		Wishlist:    h.wishlist,
		Credentials: h.credentials,
		Auth:        h.auth,
		Cache:       h.cache,
		Notifier:    h.notifier,
		Ops:         h.ops,
	}, cfg, logger.Nop())
	service.SetReminderClock(h.svc, fixedClock)
	return h
}

func subscribers(ids ...int64) []models.ReminderSubscription {
	subs := make([]models.ReminderSubscription, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, models.ReminderSubscription{OwnerID: id, Enabled: true})
	}
	return subs
}

func recipient(ownerID int64) models.Recipient {
	return models.Recipient{OwnerID: ownerID, ChannelID: fmt.Sprintf("dm-%d", ownerID)}
}

func credentialFor(ownerID int64) models.Credential {
	return models.Credential{
		OwnerID:           ownerID,
		AccountIdentifier: fmt.Sprintf("player%d", ownerID),
		Secret:            "hunter2",
		Region:            models.RegionNorthAmerica,
	}
}

// expectHappy wires a subscriber that authenticates and gets notified.
func (h *reminderHarness) expectHappy(ownerID int64, wishlisted ...string) {
	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), ownerID).Return(recipient(ownerID), nil)
	h.credentials.EXPECT().GetByOwner(gomock.Any(), ownerID).Return(credentialFor(ownerID), nil)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), credentialFor(ownerID), "").Return(testSession(), nil)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), service.StorefrontRequest{
		OwnerID:           ownerID,
		AccountIdentifier: credentialFor(ownerID).AccountIdentifier,
		Region:            models.RegionNorthAmerica,
	}, gomock.Any()).Return(models.DailyOffers{OfferIDs: offersN(int(ownerID)), Remaining: time.Hour}, nil)
	h.wishlist.EXPECT().List(gomock.Any(), ownerID, gomock.Any()).Return(wishlisted, nil)
	h.notifier.EXPECT().Send(gomock.Any(), recipient(ownerID), gomock.Any()).Return(nil)
}

func (h *reminderHarness) expectHeartbeat(t *testing.T, hadErrors bool, processed int) {
	h.ops.EXPECT().Heartbeat(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, hb models.Heartbeat) error {
			assert.NoError(t, ctx.Err())
			assert.Equal(t, service.HeartbeatService, hb.Service)
			assert.Equal(t, hadErrors, hb.HadErrors)
			assert.Equal(t, processed, hb.Processed)
			assert.Equal(t, testNow, hb.CompletedAt)
			return nil
		})
}

func TestRunPass_NotifiesEverySubscriber(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(1, 2), nil)
	h.expectHappy(1)
	h.expectHappy(2)
	h.expectHeartbeat(t, false, 2)

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.Count(models.OutcomeNotified))
	assert.False(t, report.HadErrors)
}

func TestRunPass_WishlistCountInNotification(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(5), nil)
	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(5)).Return(recipient(5), nil)
	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(5)).Return(credentialFor(5), nil)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), "").Return(testSession(), nil)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ service.StorefrontRequest, factory service.SessionFactory) (models.DailyOffers, error) {
			session, err := factory(ctx)
			assert.NoError(t, err)
			assert.Equal(t, testSession(), session)
			return models.DailyOffers{OfferIDs: offersN(5)}, nil
		})
	h.wishlist.EXPECT().List(gomock.Any(), int64(5), gomock.Any()).Return(offersN(5)[:2], nil)
	h.notifier.EXPECT().Send(gomock.Any(), recipient(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Recipient, n models.Notification) error {
			assert.Contains(t, n.Body, "2 skins from your wishlist")
			return nil
		})
	h.expectHeartbeat(t, false, 1)

	_, err := h.svc.RunPass(context.Background())
	require.NoError(t, err)
}

// Every authentication state ends in exactly one documented outcome.
func TestRunPass_AuthOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		authErr error
		want    models.ReminderOutcome
	}{
		{"invalid password", service.ErrInvalidCredentials, models.OutcomeAuthFailed},
		{"rate limited", service.ErrRateLimited, models.OutcomeRateLimited},
		{"mfa enabled", service.ErrMFARequired, models.OutcomeMFARequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newReminderHarness(t)

			h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(9), nil)
			h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(9)).Return(recipient(9), nil)
			h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(9)).Return(credentialFor(9), nil)
			h.auth.EXPECT().AuthenticateUser(gomock.Any(), credentialFor(9), "").Return(models.AuthSession{}, tt.authErr)
			h.reminders.EXPECT().Disable(gomock.Any(), int64(9)).Return(nil)
			h.notifier.EXPECT().Send(gomock.Any(), recipient(9), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ models.Recipient, n models.Notification) error {
					assert.Equal(t, "Store reminders turned off", n.Title)
					return nil
				})
			h.expectHeartbeat(t, false, 1)

			report, err := h.svc.RunPass(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Outcomes[9])
			assert.True(t, tt.want.Disables())
		})
	}
}

func TestRunPass_UnreachableRecipientSkipped(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(3), nil)
	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(3)).Return(models.Recipient{}, adapter.ErrRecipientNotFound)
	h.expectHeartbeat(t, false, 1)

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUnreachable, report.Outcomes[3])
}

func TestRunPass_NoCredentialDisablesAndNotifies(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(4), nil)
	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(4)).Return(recipient(4), nil)
	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(4)).Return(models.Credential{}, service.ErrNotLoggedIn)
	h.reminders.EXPECT().Disable(gomock.Any(), int64(4)).Return(nil)
	// best effort: a failed explanation does not change the outcome
	h.notifier.EXPECT().Send(gomock.Any(), recipient(4), gomock.Any()).Return(adapter.ErrRecipientBlocked)
	h.expectHeartbeat(t, false, 1)

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNoCredential, report.Outcomes[4])
}

func TestRunPass_BlockedChannelDisablesSilently(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(6), nil)
	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(6)).Return(recipient(6), nil)
	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(6)).Return(credentialFor(6), nil)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), "").Return(testSession(), nil)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DailyOffers{OfferIDs: offersN(6)}, nil)
	h.wishlist.EXPECT().List(gomock.Any(), int64(6), gomock.Any()).Return(nil, nil)
	h.notifier.EXPECT().Send(gomock.Any(), recipient(6), gomock.Any()).Return(adapter.ErrRecipientBlocked).Times(1)
	h.reminders.EXPECT().Disable(gomock.Any(), int64(6)).Return(nil)
	h.expectHeartbeat(t, false, 1)

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeBlocked, report.Outcomes[6])
}

func TestRunPass_SendFailureIsLoggedNotReported(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(8), nil)
	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(8)).Return(recipient(8), nil)
	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(8)).Return(credentialFor(8), nil)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), "").Return(testSession(), nil)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DailyOffers{OfferIDs: offersN(8)}, nil)
	h.wishlist.EXPECT().List(gomock.Any(), int64(8), gomock.Any()).Return(nil, errors.New("db gone"))
	h.notifier.EXPECT().Send(gomock.Any(), recipient(8), gomock.Any()).Return(adapter.ErrTransport)
	h.expectHeartbeat(t, false, 1)

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSendFailed, report.Outcomes[8])
}

// One failing subscriber is reported and the rest are still processed.
func TestRunPass_IsolatesFailures(t *testing.T) {
	h := newReminderHarness(t)
	boom := errors.New("storefront exploded")

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(1, 2, 3), nil)
	h.expectHappy(1)

	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(2)).Return(recipient(2), nil)
	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(2)).Return(credentialFor(2), nil)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), credentialFor(2), "").Return(testSession(), nil)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DailyOffers{}, boom)
	h.ops.EXPECT().ReportError(gomock.Any(), "Error while processing store for 2", gomock.Any()).Do(
		func(_ context.Context, _ string, err error) {
			assert.ErrorIs(t, err, boom)
		})

	h.expectHappy(3)
	h.expectHeartbeat(t, true, 3)

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.True(t, report.HadErrors)
	assert.Equal(t, models.OutcomeNotified, report.Outcomes[1])
	assert.Equal(t, models.OutcomeUnexpectedFail, report.Outcomes[2])
	assert.Equal(t, models.OutcomeNotified, report.Outcomes[3])
}

func TestRunPass_IsolatesAuthenticationFailures(t *testing.T) {
	tests := []struct {
		name string
		auth func(context.Context, models.Credential, string) (models.AuthSession, error)
		want error
	}{
		{
			name: "vendor unreachable",
			auth: func(context.Context, models.Credential, string) (models.AuthSession, error) {
				return models.AuthSession{}, fmt.Errorf("%w: connection reset", service.ErrUpstreamUnavailable)
			},
			want: service.ErrUpstreamUnavailable,
		},
		{
			name: "handshake panics",
			auth: func(context.Context, models.Credential, string) (models.AuthSession, error) {
				panic("unexpected cookie format")
			},
			want: service.ErrUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newReminderHarness(t)

			h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(1, 2, 3, 4, 5), nil)
			h.expectHappy(1)
			h.expectHappy(2)

			h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(3)).Return(recipient(3), nil)
			h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(3)).Return(credentialFor(3), nil)
			h.auth.EXPECT().AuthenticateUser(gomock.Any(), credentialFor(3), "").DoAndReturn(tt.auth)
			h.ops.EXPECT().ReportError(gomock.Any(), "Error while processing store for 3", gomock.Any()).Do(
				func(_ context.Context, _ string, err error) {
					assert.ErrorIs(t, err, tt.want)
				})

			h.expectHappy(4)
			h.expectHappy(5)
			h.expectHeartbeat(t, true, 5)

			report, err := h.svc.RunPass(context.Background())

			require.NoError(t, err)
			assert.Equal(t, 1, report.Count(models.OutcomeUnexpectedFail))
			assert.Equal(t, models.OutcomeUnexpectedFail, report.Outcomes[3])
			for _, id := range []int64{1, 2, 4, 5} {
				assert.Equal(t, models.OutcomeNotified, report.Outcomes[id], "subscriber %d", id)
			}
		})
	}
}

func TestRunPass_RecoversPanics(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(1, 2), nil)
	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(1)).DoAndReturn(
		func(context.Context, int64) (models.Recipient, error) {
			panic("nil map write")
		})
	h.ops.EXPECT().ReportError(gomock.Any(), "Error while processing store for 1", gomock.Any()).Do(
		func(_ context.Context, _ string, err error) {
			assert.ErrorIs(t, err, service.ErrUnexpected)
			assert.True(t, strings.Contains(err.Error(), "nil map write"))
		})
	h.expectHappy(2)
	h.expectHeartbeat(t, true, 2)

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUnexpectedFail, report.Outcomes[1])
	assert.Equal(t, models.OutcomeNotified, report.Outcomes[2])
}

func TestRunPass_SubscriberDeadline(t *testing.T) {
	h := newReminderHarness(t, func(cfg *config.StructuredConfig) {
		cfg.Workers.Reminder.SubscriberTimeout = 20 * time.Millisecond
	})

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(1), nil)
	h.notifier.EXPECT().OpenDirectChannel(gomock.Any(), int64(1)).DoAndReturn(
		func(ctx context.Context, _ int64) (models.Recipient, error) {
			<-ctx.Done()
			return models.Recipient{}, fmt.Errorf("%w: %v", adapter.ErrTransport, ctx.Err())
		})
	h.ops.EXPECT().ReportError(gomock.Any(), gomock.Any(), gomock.Any())
	h.expectHeartbeat(t, true, 1)

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUnexpectedFail, report.Outcomes[1])
}

func TestRunPass_ListFailure(t *testing.T) {
	h := newReminderHarness(t)
	dbErr := errors.New("connection refused")

	h.reminders.EXPECT().List(gomock.Any(), true).Return(nil, dbErr)
	h.ops.EXPECT().ReportError(gomock.Any(), gomock.Any(), dbErr)
	h.expectHeartbeat(t, true, 0)

	_, err := h.svc.RunPass(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestRunPass_CanceledStillSendsHeartbeat(t *testing.T) {
	h := newReminderHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h.reminders.EXPECT().List(gomock.Any(), true).Return(subscribers(1, 2), nil)
	h.expectHeartbeat(t, false, 0)

	report, err := h.svc.RunPass(ctx)

	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
}

func TestRunPass_LimitedModeSkips(t *testing.T) {
	h := newReminderHarness(t, func(cfg *config.StructuredConfig) {
		cfg.App.Limited = true
	})

	report, err := h.svc.RunPass(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
}

func TestRunPass_EmptyPassStillSendsHeartbeat(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().List(gomock.Any(), true).Return(nil, nil)
	h.expectHeartbeat(t, false, 0)

	_, err := h.svc.RunPass(context.Background())
	require.NoError(t, err)
}

func TestNeedsBootstrap(t *testing.T) {
	h := newReminderHarness(t)

	h.storefronts.EXPECT().CountForDate(gomock.Any(), testToday).Return(0, nil)
	h.storefronts.EXPECT().CountForDate(gomock.Any(), testToday).Return(12, nil)

	need, err := h.svc.NeedsBootstrap(context.Background())
	require.NoError(t, err)
	assert.True(t, need)

	need, err = h.svc.NeedsBootstrap(context.Background())
	require.NoError(t, err)
	assert.False(t, need)
}

func TestReminderSettings(t *testing.T) {
	h := newReminderHarness(t)

	h.reminders.EXPECT().GetOrCreate(gomock.Any(), int64(42)).Return(models.ReminderSubscription{OwnerID: 42}, nil)
	h.reminders.EXPECT().SetEnabled(gomock.Any(), int64(42), true).Return(nil)

	sub, err := h.svc.Settings(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, sub.Enabled)

	sub, err = h.svc.SetEnabled(context.Background(), 42, true)
	require.NoError(t, err)
	assert.Equal(t, models.ReminderSubscription{OwnerID: 42, Enabled: true}, sub)
}
