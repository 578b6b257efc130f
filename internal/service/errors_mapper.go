package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/store"
)

// mapAdapterError translates an adapter error into a service error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	case errors.Is(err, adapter.ErrRateLimited):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case errors.Is(err, adapter.ErrMFARequired):
		return fmt.Errorf("%w: %v", ErrMFARequired, err)
	case errors.Is(err, adapter.ErrUpstreamData):
		return fmt.Errorf("%w: %v", ErrUpstreamData, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
}

// mapStoreError translates repository sentinels into service errors and
// leaves everything else wrapped as is.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrCredentialNotFound):
		return ErrNotLoggedIn
	case errors.Is(err, store.ErrCredentialAlreadyExists):
		return ErrAccountTaken
	case errors.Is(err, store.ErrStorefrontNotFound):
		return ErrCacheMiss
	default:
		return err
	}
}
