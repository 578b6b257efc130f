package adapter

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid account credentials")
	ErrRateLimited        = errors.New("rate limited by upstream")
	ErrMFARequired        = errors.New("multifactor code required")
	ErrTransport          = errors.New("upstream transport failure")
	ErrUpstreamData       = errors.New("upstream returned unexpected data")

	ErrRecipientNotFound = errors.New("chat recipient not found")
	ErrRecipientBlocked  = errors.New("chat recipient does not accept messages")
)
