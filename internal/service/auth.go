package service

import (
	"context"

	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/models"
)

type authService struct {
	authenticator adapter.Authenticator

	logger *logger.Logger
}

func NewAuthService(authenticator adapter.Authenticator, logger *logger.Logger) AuthService {
	return &authService{authenticator: authenticator, logger: logger}
}

func (a *authService) AuthenticateUser(ctx context.Context, cred models.Credential, mfaCode string) (models.AuthSession, error) {
	session, err := a.authenticator.Authorize(ctx, models.AuthRequest{
		AccountIdentifier: cred.AccountIdentifier,
		Secret:            cred.Secret,
		MFACode:           mfaCode,
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.AuthenticateUser").
			Int64("owner_id", cred.OwnerID).
			Str("outcome", adapter.AuthOutcome(err)).
			Msg("vendor authorization failed")
		return models.AuthSession{}, mapAdapterError(err)
	}
	return session, nil
}
