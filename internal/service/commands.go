package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/store"
	"github.com/MKhiriev/cyphers-laptop/internal/utils"
	"github.com/MKhiriev/cyphers-laptop/internal/validators"
	"github.com/MKhiriev/cyphers-laptop/models"
)

// CommandDeps groups the collaborators of the command facade.
type CommandDeps struct {
	Credentials CredentialStore
	Auth        AuthService
	Cache       StorefrontCache
	Reminders   ReminderService
	Gateway     adapter.StorefrontGateway
	Wishlists   store.WishlistRepository
	Validator   validators.Validator
	Gate        Gate
}

type commands struct {
	CommandDeps

	limited bool
	now     func() time.Time
	logger  *logger.Logger
}

func NewCommands(deps CommandDeps, limited bool, logger *logger.Logger) Commands {
	return &commands{
		CommandDeps: deps,
		limited:     limited,
		now:         time.Now,
		logger:      logger,
	}
}

func (c *commands) Login(ctx context.Context, ownerID int64, account, secret string, region models.Region, mfaCode string) (bool, error) {
	if err := c.Gate.Ready(); err != nil {
		return false, err
	}

	if parsed, err := models.ParseRegion(string(region)); err == nil {
		region = parsed
	}

	cred := models.Credential{OwnerID: ownerID, AccountIdentifier: account, Secret: secret, Region: region}
	if err := c.validate(ctx, cred); err != nil {
		return false, err
	}
	if err := c.validate(ctx, models.AuthRequest{MFACode: mfaCode}, validators.FieldMFACode); err != nil {
		return false, err
	}
	if c.limited {
		return false, ErrLimitedMode
	}

	_, err := c.Credentials.GetByOwner(ctx, ownerID)
	if err == nil {
		return false, ErrAlreadyLoggedIn
	}
	if !errors.Is(err, ErrNotLoggedIn) {
		return false, err
	}

	_, err = c.Credentials.GetByAccountIdentifier(ctx, account)
	if err == nil {
		return false, ErrAccountTaken
	}
	if !errors.Is(err, ErrNotLoggedIn) {
		return false, err
	}

	// the vendor asks for the code only after it accepted the password
	challenged := false
	_, err = c.Auth.AuthenticateUser(ctx, cred, mfaCode)
	switch {
	case errors.Is(err, ErrMFARequired):
		challenged = true
	case err != nil:
		return false, err
	}

	added, err := c.Credentials.AddCredential(ctx, ownerID, account, secret, region)
	if err != nil {
		return false, err
	}
	if !added {
		return false, ErrAccountTaken
	}
	return challenged, nil
}

func (c *commands) Logout(ctx context.Context, ownerID int64) error {
	if err := c.Gate.Ready(); err != nil {
		return err
	}
	if _, err := c.Credentials.GetByOwner(ctx, ownerID); err != nil {
		return err
	}
	return c.Credentials.DeleteByOwner(ctx, ownerID)
}

func (c *commands) UpdatePassword(ctx context.Context, ownerID int64, newSecret, mfaCode string) error {
	if err := c.Gate.Ready(); err != nil {
		return err
	}
	if err := c.validate(ctx, models.AuthRequest{Secret: newSecret, MFACode: mfaCode}, validators.FieldSecret, validators.FieldMFACode); err != nil {
		return err
	}
	if c.limited {
		return ErrLimitedMode
	}

	cred, err := c.Credentials.GetByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	cred.Secret = newSecret
	if _, err = c.Auth.AuthenticateUser(ctx, cred, mfaCode); err != nil && !errors.Is(err, ErrMFARequired) {
		return err
	}

	updated, err := c.Credentials.UpdatePassword(ctx, cred.AccountIdentifier, newSecret)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotLoggedIn
	}
	return nil
}

func (c *commands) Store(ctx context.Context, ownerID int64, mfaCode string, date time.Time) (StoreView, error) {
	if err := c.Gate.Ready(); err != nil {
		return StoreView{}, err
	}
	if err := c.validate(ctx, models.AuthRequest{MFACode: mfaCode}, validators.FieldMFACode); err != nil {
		return StoreView{}, err
	}

	cred, err := c.Credentials.GetByOwner(ctx, ownerID)
	if err != nil {
		return StoreView{}, err
	}

	today := models.CalendarDate(c.now())
	if date.IsZero() {
		date = today
	}
	date = models.CalendarDate(date)

	var factory SessionFactory
	if !c.limited {
		factory = func(ctx context.Context) (models.AuthSession, error) {
			return c.Auth.AuthenticateUser(ctx, cred, mfaCode)
		}
	}

	offers, err := c.Cache.GetOrFetch(ctx, StorefrontRequest{
		OwnerID:           ownerID,
		AccountIdentifier: cred.AccountIdentifier,
		Region:            cred.Region,
		ForDate:           date,
	}, factory)
	if errors.Is(err, ErrCacheMiss) && c.limited && date.Equal(today) {
		return StoreView{}, ErrLimitedMode
	}
	if err != nil {
		return StoreView{}, err
	}

	view := StoreView{Date: date, Region: cred.Region, OfferIDs: offers.OfferIDs, Remaining: offers.Remaining}
	wishlisted, err := c.Wishlists.List(ctx, ownerID, offers.OfferIDs...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commands.Store").
			Int64("owner_id", ownerID).
			Msg("error matching wishlist")
		return view, nil
	}
	view.Wishlisted = len(wishlisted)
	return view, nil
}

func (c *commands) Balance(ctx context.Context, ownerID int64, mfaCode string) (models.WalletBalance, error) {
	query, err := c.vendorQuery(ctx, ownerID, mfaCode)
	if err != nil {
		return models.WalletBalance{}, err
	}

	wallet, err := c.Gateway.FetchWallet(ctx, query)
	if err != nil {
		return models.WalletBalance{}, mapAdapterError(err)
	}
	return wallet, nil
}

func (c *commands) NightMarket(ctx context.Context, ownerID int64, mfaCode string) (models.NightMarket, error) {
	query, err := c.vendorQuery(ctx, ownerID, mfaCode)
	if err != nil {
		return models.NightMarket{}, err
	}

	market, err := c.Gateway.FetchNightMarket(ctx, query)
	if err != nil {
		return models.NightMarket{}, mapAdapterError(err)
	}
	return market, nil
}

// vendorQuery authenticates ownerID for a direct, uncached vendor call.
func (c *commands) vendorQuery(ctx context.Context, ownerID int64, mfaCode string) (models.StorefrontQuery, error) {
	if err := c.Gate.Ready(); err != nil {
		return models.StorefrontQuery{}, err
	}
	if err := c.validate(ctx, models.AuthRequest{MFACode: mfaCode}, validators.FieldMFACode); err != nil {
		return models.StorefrontQuery{}, err
	}
	if c.limited {
		return models.StorefrontQuery{}, ErrLimitedMode
	}

	cred, err := c.Credentials.GetByOwner(ctx, ownerID)
	if err != nil {
		return models.StorefrontQuery{}, err
	}

	session, err := c.Auth.AuthenticateUser(ctx, cred, mfaCode)
	if err != nil {
		return models.StorefrontQuery{}, err
	}

	return models.StorefrontQuery{
		Session:           session,
		Region:            cred.Region,
		AccountIdentifier: cred.AccountIdentifier,
	}, nil
}

func (c *commands) ReminderSettings(ctx context.Context, ownerID int64) (models.ReminderSubscription, error) {
	if err := c.Gate.Ready(); err != nil {
		return models.ReminderSubscription{}, err
	}
	return c.Reminders.Settings(ctx, ownerID)
}

func (c *commands) ToggleReminder(ctx context.Context, ownerID int64) (models.ReminderSubscription, error) {
	if err := c.Gate.Ready(); err != nil {
		return models.ReminderSubscription{}, err
	}

	current, err := c.Reminders.Settings(ctx, ownerID)
	if err != nil {
		return models.ReminderSubscription{}, err
	}

	// a reminder without a linked account would be force-disabled on the next pass
	if !current.Enabled {
		if _, err = c.Credentials.GetByOwner(ctx, ownerID); err != nil {
			return current, err
		}
	}
	return c.Reminders.SetEnabled(ctx, ownerID, !current.Enabled)
}

func (c *commands) AddToWishlist(ctx context.Context, ownerID int64, offerID string) error {
	item, err := c.wishlistItem(ctx, ownerID, offerID)
	if err != nil {
		return err
	}
	return c.Wishlists.Add(ctx, item.OwnerID, item.OfferID)
}

func (c *commands) RemoveFromWishlist(ctx context.Context, ownerID int64, offerID string) error {
	item, err := c.wishlistItem(ctx, ownerID, offerID)
	if err != nil {
		return err
	}
	return c.Wishlists.Remove(ctx, item.OwnerID, item.OfferID)
}

func (c *commands) Wishlist(ctx context.Context, ownerID int64) ([]string, error) {
	if err := c.Gate.Ready(); err != nil {
		return nil, err
	}
	return c.Wishlists.List(ctx, ownerID)
}

func (c *commands) wishlistItem(ctx context.Context, ownerID int64, offerID string) (models.WishlistItem, error) {
	if err := c.Gate.Ready(); err != nil {
		return models.WishlistItem{}, err
	}

	item := models.WishlistItem{OwnerID: ownerID, OfferID: offerID}
	if err := c.validate(ctx, item); err != nil {
		return models.WishlistItem{}, err
	}
	item.OfferID, _ = utils.NormalizeUUID(offerID)
	return item, nil
}

func (c *commands) History(ctx context.Context, ownerID int64, from, to time.Time) ([]models.StorefrontEntry, error) {
	if err := c.Gate.Ready(); err != nil {
		return nil, err
	}

	r := models.HistoryRange{OwnerID: ownerID, From: from, To: to}
	if err := c.validate(ctx, r); err != nil {
		return nil, err
	}
	return c.Cache.History(ctx, r)
}

func (c *commands) validate(ctx context.Context, obj any, fields ...string) error {
	if err := c.Validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
