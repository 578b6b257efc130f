package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/mock"
	"github.com/MKhiriev/cyphers-laptop/internal/service"
	"github.com/MKhiriev/cyphers-laptop/internal/validators"
	"github.com/MKhiriev/cyphers-laptop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOfferID = "5a3b6f7c-0000-4000-8000-000000000001"

type commandsHarness struct {
	credentials *mock.MockCredentialStore
	auth        *mock.MockAuthService
	cache       *mock.MockStorefrontCache
	reminders   *mock.MockReminderService
	gateway     *mock.MockStorefrontGateway
	wishlist    *mock.MockWishlistRepository
	gate        *mock.MockGate

	cmd service.Commands
}

func newCommandsHarness(t *testing.T, limited bool) *commandsHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &commandsHarness{
		credentials: mock.NewMockCredentialStore(ctrl),
		auth:        mock.NewMockAuthService(ctrl),
		cache:       mock.NewMockStorefrontCache(ctrl),
		reminders:   mock.NewMockReminderService(ctrl),
		gateway:     mock.NewMockStorefrontGateway(ctrl),
		wishlist:    mock.NewMockWishlistRepository(ctrl),
		gate:        mock.NewMockGate(ctrl),
	}
	h.gate.EXPECT().Ready().Return(nil).AnyTimes()

	h.cmd = service.NewCommands(service.CommandDeps{
		Credentials: h.credentials,
		Auth:        h.auth,
		Cache:       h.cache,
		Reminders:   h.reminders,
		Gateway:     h.gateway,
		Wishlists:   h.wishlist,
		Validator:   validators.NewCommandValidator(),
		Gate:        h.gate,
	}, limited, logger.Nop())
	service.SetCommandsClock(h.cmd, fixedClock)
	return h
}

func TestCommands_NotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := mock.NewMockGate(ctrl)
	notReady := errors.New("starting up")
	gate.EXPECT().Ready().Return(notReady).AnyTimes()

	cmd := service.NewCommands(service.CommandDeps{Gate: gate, Validator: validators.NewCommandValidator()}, false, logger.Nop())
	ctx := context.Background()

	_, err := cmd.Login(ctx, 42, "player", "hunter2", models.RegionEurope, "")
	assert.ErrorIs(t, err, notReady)
	_, err = cmd.Store(ctx, 42, "", time.Time{})
	assert.ErrorIs(t, err, notReady)
	_, err = cmd.ToggleReminder(ctx, 42)
	assert.ErrorIs(t, err, notReady)
	assert.ErrorIs(t, cmd.Logout(ctx, 42), notReady)
}

func TestCommands_Login_Success(t *testing.T) {
	h := newCommandsHarness(t, false)
	cred := testCredential()

	gomock.InOrder(
		h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(models.Credential{}, service.ErrNotLoggedIn),
		h.credentials.EXPECT().GetByAccountIdentifier(gomock.Any(), "player").Return(models.Credential{}, service.ErrNotLoggedIn),
		h.auth.EXPECT().AuthenticateUser(gomock.Any(), cred, "").Return(testSession(), nil),
		h.credentials.EXPECT().AddCredential(gomock.Any(), int64(42), "player", "hunter2", models.RegionEurope).Return(true, nil),
	)

	challenged, err := h.cmd.Login(context.Background(), 42, "player", "hunter2", models.RegionEurope, "")

	require.NoError(t, err)
	assert.False(t, challenged)
}

func TestCommands_Login_RegionDisplayName(t *testing.T) {
	for _, input := range []models.Region{"Europe", "EU", " europe "} {
		t.Run(string(input), func(t *testing.T) {
			h := newCommandsHarness(t, false)

			h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(models.Credential{}, service.ErrNotLoggedIn)
			h.credentials.EXPECT().GetByAccountIdentifier(gomock.Any(), "player").Return(models.Credential{}, service.ErrNotLoggedIn)
			h.auth.EXPECT().AuthenticateUser(gomock.Any(), testCredential(), "").Return(testSession(), nil)
			h.credentials.EXPECT().AddCredential(gomock.Any(), int64(42), "player", "hunter2", models.RegionEurope).Return(true, nil)

			_, err := h.cmd.Login(context.Background(), 42, "player", "hunter2", input, "")

			require.NoError(t, err)
		})
	}
}

func TestCommands_Login_MFAChallengeStillStores(t *testing.T) {
	h := newCommandsHarness(t, false)

	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(models.Credential{}, service.ErrNotLoggedIn)
	h.credentials.EXPECT().GetByAccountIdentifier(gomock.Any(), "player").Return(models.Credential{}, service.ErrNotLoggedIn)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), "").Return(models.AuthSession{}, service.ErrMFARequired)
	h.credentials.EXPECT().AddCredential(gomock.Any(), int64(42), "player", "hunter2", models.RegionEurope).Return(true, nil)

	challenged, err := h.cmd.Login(context.Background(), 42, "player", "hunter2", models.RegionEurope, "")

	require.NoError(t, err)
	assert.True(t, challenged)
}

func TestCommands_Login_Rejections(t *testing.T) {
	t.Run("already logged in", func(t *testing.T) {
		h := newCommandsHarness(t, false)
		h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil)

		_, err := h.cmd.Login(context.Background(), 42, "player", "hunter2", models.RegionEurope, "")
		assert.ErrorIs(t, err, service.ErrAlreadyLoggedIn)
	})

	t.Run("account owned by someone else", func(t *testing.T) {
		h := newCommandsHarness(t, false)
		h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(7)).Return(models.Credential{}, service.ErrNotLoggedIn)
		h.credentials.EXPECT().GetByAccountIdentifier(gomock.Any(), "player").Return(testCredential(), nil)

		_, err := h.cmd.Login(context.Background(), 7, "player", "hunter2", models.RegionEurope, "")
		assert.ErrorIs(t, err, service.ErrAccountTaken)
	})

	t.Run("wrong password", func(t *testing.T) {
		h := newCommandsHarness(t, false)
		h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(models.Credential{}, service.ErrNotLoggedIn)
		h.credentials.EXPECT().GetByAccountIdentifier(gomock.Any(), "player").Return(models.Credential{}, service.ErrNotLoggedIn)
		h.auth.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), "").Return(models.AuthSession{}, service.ErrInvalidCredentials)

		_, err := h.cmd.Login(context.Background(), 42, "player", "wrong", models.RegionEurope, "")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("lost the race to another owner", func(t *testing.T) {
		h := newCommandsHarness(t, false)
		h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(models.Credential{}, service.ErrNotLoggedIn)
		h.credentials.EXPECT().GetByAccountIdentifier(gomock.Any(), "player").Return(models.Credential{}, service.ErrNotLoggedIn)
		h.auth.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), "").Return(testSession(), nil)
		h.credentials.EXPECT().AddCredential(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := h.cmd.Login(context.Background(), 42, "player", "hunter2", models.RegionEurope, "")
		assert.ErrorIs(t, err, service.ErrAccountTaken)
	})

	t.Run("invalid input", func(t *testing.T) {
		h := newCommandsHarness(t, false)

		_, err := h.cmd.Login(context.Background(), 42, "two words", "hunter2", models.RegionEurope, "")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		assert.ErrorIs(t, err, validators.ErrInvalidAccount)

		_, err = h.cmd.Login(context.Background(), 42, "player", "hunter2", models.RegionEurope, "12")
		assert.ErrorIs(t, err, validators.ErrInvalidMFACode)

		_, err = h.cmd.Login(context.Background(), 42, "player", "hunter2", "Atlantis", "")
		assert.ErrorIs(t, err, validators.ErrInvalidRegion)
	})

	t.Run("limited mode", func(t *testing.T) {
		h := newCommandsHarness(t, true)

		_, err := h.cmd.Login(context.Background(), 42, "player", "hunter2", models.RegionEurope, "")
		assert.ErrorIs(t, err, service.ErrLimitedMode)
	})
}

func TestCommands_Logout(t *testing.T) {
	h := newCommandsHarness(t, false)

	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil)
	h.credentials.EXPECT().DeleteByOwner(gomock.Any(), int64(42)).Return(nil)
	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(43)).Return(models.Credential{}, service.ErrNotLoggedIn)

	assert.NoError(t, h.cmd.Logout(context.Background(), 42))
	assert.ErrorIs(t, h.cmd.Logout(context.Background(), 43), service.ErrNotLoggedIn)
}

func TestCommands_UpdatePassword(t *testing.T) {
	h := newCommandsHarness(t, false)
	withNewSecret := testCredential()
	withNewSecret.Secret = "new-secret"

	gomock.InOrder(
		h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil),
		h.auth.EXPECT().AuthenticateUser(gomock.Any(), withNewSecret, "").Return(testSession(), nil),
		h.credentials.EXPECT().UpdatePassword(gomock.Any(), "player", "new-secret").Return(true, nil),
	)

	assert.NoError(t, h.cmd.UpdatePassword(context.Background(), 42, "new-secret", ""))
}

func TestCommands_UpdatePassword_RejectedByVendor(t *testing.T) {
	h := newCommandsHarness(t, false)

	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), "").Return(models.AuthSession{}, service.ErrInvalidCredentials)

	err := h.cmd.UpdatePassword(context.Background(), 42, "still-wrong", "")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestCommands_Store_Today(t *testing.T) {
	h := newCommandsHarness(t, false)

	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), service.StorefrontRequest{
		OwnerID:           42,
		AccountIdentifier: "player",
		Region:            models.RegionEurope,
		ForDate:           testToday,
	}, gomock.Not(gomock.Nil())).DoAndReturn(
		func(ctx context.Context, _ service.StorefrontRequest, factory service.SessionFactory) (models.DailyOffers, error) {
			_, err := factory(ctx)
			assert.NoError(t, err)
			return models.DailyOffers{OfferIDs: offersN(1), Remaining: time.Hour}, nil
		})
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), testCredential(), "123456").Return(testSession(), nil)
	h.wishlist.EXPECT().List(gomock.Any(), int64(42), gomock.Any()).Return(offersN(1)[:1], nil)

	view, err := h.cmd.Store(context.Background(), 42, "123456", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, testToday, view.Date)
	assert.Equal(t, offersN(1), view.OfferIDs)
	assert.Equal(t, time.Hour, view.Remaining)
	assert.Equal(t, 1, view.Wishlisted)
	assert.Equal(t, models.RegionEurope, view.Region)
}

func TestCommands_Store_HistoricalMiss(t *testing.T) {
	h := newCommandsHarness(t, false)
	lastWeek := testToday.AddDate(0, 0, -7)

	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DailyOffers{}, service.ErrCacheMiss)

	_, err := h.cmd.Store(context.Background(), 42, "", lastWeek)

	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestCommands_Store_LimitedMode(t *testing.T) {
	h := newCommandsHarness(t, true)

	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil).Times(2)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), gomock.Any(), gomock.Nil()).Return(models.DailyOffers{}, service.ErrCacheMiss)
	h.cache.EXPECT().GetOrFetch(gomock.Any(), gomock.Any(), gomock.Nil()).Return(models.DailyOffers{OfferIDs: offersN(2)}, nil)
	h.wishlist.EXPECT().List(gomock.Any(), int64(42), gomock.Any()).Return(nil, nil)

	_, err := h.cmd.Store(context.Background(), 42, "", time.Time{})
	assert.ErrorIs(t, err, service.ErrLimitedMode)

	view, err := h.cmd.Store(context.Background(), 42, "", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, offersN(2), view.OfferIDs)
}

func TestCommands_Balance(t *testing.T) {
	h := newCommandsHarness(t, false)
	wallet := models.WalletBalance{models.CurrencyValorantPoints: 1250}

	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), testCredential(), "").Return(testSession(), nil)
	h.gateway.EXPECT().FetchWallet(gomock.Any(), models.StorefrontQuery{
		Session:           testSession(),
		Region:            models.RegionEurope,
		AccountIdentifier: "player",
	}).Return(wallet, nil)

	got, err := h.cmd.Balance(context.Background(), 42, "")

	require.NoError(t, err)
	assert.Equal(t, int64(1250), got.Get(models.CurrencyValorantPoints))
}

func TestCommands_NightMarket(t *testing.T) {
	h := newCommandsHarness(t, false)

	h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil).Times(2)
	h.auth.EXPECT().AuthenticateUser(gomock.Any(), gomock.Any(), "").Return(testSession(), nil).Times(2)
	h.gateway.EXPECT().FetchNightMarket(gomock.Any(), gomock.Any()).Return(models.NightMarket{}, nil)
	h.gateway.EXPECT().FetchNightMarket(gomock.Any(), gomock.Any()).Return(models.NightMarket{}, adapter.ErrUpstreamData)

	market, err := h.cmd.NightMarket(context.Background(), 42, "")
	require.NoError(t, err)
	assert.False(t, market.Active)

	_, err = h.cmd.NightMarket(context.Background(), 42, "")
	assert.ErrorIs(t, err, service.ErrUpstreamData)
}

func TestCommands_VendorCommandsRefusedInLimitedMode(t *testing.T) {
	h := newCommandsHarness(t, true)

	_, err := h.cmd.Balance(context.Background(), 42, "")
	assert.ErrorIs(t, err, service.ErrLimitedMode)
	_, err = h.cmd.NightMarket(context.Background(), 42, "")
	assert.ErrorIs(t, err, service.ErrLimitedMode)
	assert.ErrorIs(t, h.cmd.UpdatePassword(context.Background(), 42, "new", ""), service.ErrLimitedMode)
}

func TestCommands_ToggleReminder(t *testing.T) {
	t.Run("enable with credential", func(t *testing.T) {
		h := newCommandsHarness(t, false)
		h.reminders.EXPECT().Settings(gomock.Any(), int64(42)).Return(models.ReminderSubscription{OwnerID: 42}, nil)
		h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(testCredential(), nil)
		h.reminders.EXPECT().SetEnabled(gomock.Any(), int64(42), true).Return(models.ReminderSubscription{OwnerID: 42, Enabled: true}, nil)

		sub, err := h.cmd.ToggleReminder(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, sub.Enabled)
	})

	t.Run("enable without credential", func(t *testing.T) {
		h := newCommandsHarness(t, false)
		h.reminders.EXPECT().Settings(gomock.Any(), int64(42)).Return(models.ReminderSubscription{OwnerID: 42}, nil)
		h.credentials.EXPECT().GetByOwner(gomock.Any(), int64(42)).Return(models.Credential{}, service.ErrNotLoggedIn)

		_, err := h.cmd.ToggleReminder(context.Background(), 42)
		assert.ErrorIs(t, err, service.ErrNotLoggedIn)
	})

	t.Run("disable", func(t *testing.T) {
		h := newCommandsHarness(t, false)
		h.reminders.EXPECT().Settings(gomock.Any(), int64(42)).Return(models.ReminderSubscription{OwnerID: 42, Enabled: true}, nil)
		h.reminders.EXPECT().SetEnabled(gomock.Any(), int64(42), false).Return(models.ReminderSubscription{OwnerID: 42}, nil)

		sub, err := h.cmd.ToggleReminder(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, sub.Enabled)
	})
}

func TestCommands_ReminderSettings(t *testing.T) {
	h := newCommandsHarness(t, false)
	h.reminders.EXPECT().Settings(gomock.Any(), int64(42)).Return(models.ReminderSubscription{OwnerID: 42}, nil)

	sub, err := h.cmd.ReminderSettings(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), sub.OwnerID)
}

func TestCommands_Wishlist(t *testing.T) {
	h := newCommandsHarness(t, false)
	ctx := context.Background()

	h.wishlist.EXPECT().Add(gomock.Any(), int64(42), testOfferID).Return(nil)
	h.wishlist.EXPECT().Remove(gomock.Any(), int64(42), testOfferID).Return(nil)
	h.wishlist.EXPECT().List(gomock.Any(), int64(42)).Return([]string{testOfferID}, nil)

	require.NoError(t, h.cmd.AddToWishlist(ctx, 42, "5A3B6F7C-0000-4000-8000-000000000001"))
	require.NoError(t, h.cmd.RemoveFromWishlist(ctx, 42, testOfferID))

	items, err := h.cmd.Wishlist(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []string{testOfferID}, items)

	assert.ErrorIs(t, h.cmd.AddToWishlist(ctx, 42, "vandal"), validators.ErrInvalidOfferID)
}

func TestCommands_History(t *testing.T) {
	h := newCommandsHarness(t, false)
	from := testToday.AddDate(0, 0, -7)

	h.cache.EXPECT().History(gomock.Any(), models.HistoryRange{OwnerID: 42, From: from, To: testToday}).
		Return([]models.StorefrontEntry{{OwnerID: 42, Date: testToday}}, nil)

	entries, err := h.cmd.History(context.Background(), 42, from, testToday)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = h.cmd.History(context.Background(), 42, testToday, from)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
