package service

import "errors"

var (
	ErrNotLoggedIn     = errors.New("no account linked")
	ErrAlreadyLoggedIn = errors.New("an account is already linked")
	ErrAccountTaken    = errors.New("account is linked to another user")
	ErrInvalidInput    = errors.New("invalid input")

	ErrInvalidCredentials  = errors.New("invalid account credentials")
	ErrRateLimited         = errors.New("vendor rate limit reached")
	ErrMFARequired         = errors.New("multifactor code required")
	ErrUpstreamUnavailable = errors.New("vendor unavailable")
	ErrUpstreamData        = errors.New("vendor returned incomplete data")

	ErrCacheMiss   = errors.New("storefront not cached")
	ErrLimitedMode = errors.New("bot is running in limited mode")
	ErrUnexpected  = errors.New("unexpected failure")
)
