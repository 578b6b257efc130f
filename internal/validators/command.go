package validators

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/cyphers-laptop/internal/utils"
	"github.com/MKhiriev/cyphers-laptop/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldOwnerID = "owner_id"
	FieldAccount = "account"
	FieldSecret  = "secret"
	FieldRegion  = "region"
	FieldMFACode = "mfa_code"
	FieldOfferID = "offer_id"
	FieldWindow  = "window"
)

const (
	maxAccountLength = 64
	maxSecretLength  = 128
	mfaCodeLength    = 6

	// MaxHistoryWindow bounds a single history lookup.
	MaxHistoryWindow = 366 * 24 * time.Hour
)

// CommandValidator validates the values chat commands hand to the service
// layer: credentials, authorization requests, wishlist items and history
// ranges.
type CommandValidator struct {
}

// NewCommandValidator constructs a CommandValidator and returns it as the
// Validator interface.
func NewCommandValidator() Validator {
	return &CommandValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.Credential, models.AuthRequest, models.WishlistItem and
// models.HistoryRange are accepted; anything else yields ErrUnsupportedType.
func (v *CommandValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(value, fields...)
	case *models.Credential:
		return v.validateCredential(*value, fields...)

	case models.AuthRequest:
		return v.validateAuthRequest(value, fields...)
	case *models.AuthRequest:
		return v.validateAuthRequest(*value, fields...)

	case models.WishlistItem:
		return v.validateWishlistItem(value, fields...)
	case *models.WishlistItem:
		return v.validateWishlistItem(*value, fields...)

	case models.HistoryRange:
		return v.validateHistoryRange(value, fields...)
	case *models.HistoryRange:
		return v.validateHistoryRange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredential checks owner, account, secret and region by default.
func (v *CommandValidator) validateCredential(c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldAccount, FieldSecret, FieldRegion}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if c.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldAccount:
			if !validAccount(c.AccountIdentifier) {
				return ErrInvalidAccount
			}
		case FieldSecret:
			if !validSecret(c.Secret) {
				return ErrInvalidSecret
			}
		case FieldRegion:
			if !c.Region.Valid() {
				return ErrInvalidRegion
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateAuthRequest checks account, secret and the optional MFA code by
// default. An empty MFA code is valid.
func (v *CommandValidator) validateAuthRequest(r models.AuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccount, FieldSecret, FieldMFACode}
	}

	for _, f := range fields {
		switch f {
		case FieldAccount:
			if !validAccount(r.AccountIdentifier) {
				return ErrInvalidAccount
			}
		case FieldSecret:
			if !validSecret(r.Secret) {
				return ErrInvalidSecret
			}
		case FieldMFACode:
			if r.MFACode != "" && !validMFACode(r.MFACode) {
				return ErrInvalidMFACode
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommandValidator) validateWishlistItem(w models.WishlistItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldOfferID}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if w.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldOfferID:
			if _, err := utils.NormalizeUUID(w.OfferID); err != nil {
				return ErrInvalidOfferID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CommandValidator) validateHistoryRange(h models.HistoryRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldWindow}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if h.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldWindow:
			if h.From.IsZero() || h.To.IsZero() || h.To.Before(h.From) || h.To.Sub(h.From) > MaxHistoryWindow {
				return ErrInvalidHistoryWindow
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validAccount(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxAccountLength {
		return false
	}
	return !strings.ContainsFunc(s, unicode.IsSpace)
}

func validSecret(s string) bool {
	return s != "" && len(s) <= maxSecretLength
}

func validMFACode(s string) bool {
	if len(s) != mfaCodeLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
