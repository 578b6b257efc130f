package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwnerID       = errors.New("invalid owner ID")
	ErrInvalidAccount       = errors.New("invalid account name")
	ErrInvalidSecret        = errors.New("invalid password")
	ErrInvalidRegion        = errors.New("invalid region")
	ErrInvalidMFACode       = errors.New("multifactor code must be 6 digits")
	ErrInvalidOfferID       = errors.New("invalid offer ID")
	ErrInvalidHistoryWindow = errors.New("invalid history window")
)
