// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/metrics"
	"github.com/MKhiriev/cyphers-laptop/internal/utils"
	"github.com/MKhiriev/cyphers-laptop/models"
	"golang.org/x/time/rate"
)

const (
	authorizationPath = "/api/v1/authorization"
	userInfoPath      = "/userinfo"
	entitlementsPath  = "/api/token/v1"
)

// identity service response types and error codes
const (
	authTypeResponse    = "response"
	authTypeMultifactor = "multifactor"
	authTypeAuth        = "auth"

	authErrFailure      = "auth_failure"
	authErrRateLimited  = "rate_limited"
	authErrMFAAttempt   = "multifactor_attempt_failed"
	authErrMFAExhausted = "multifactor_attempts_exhausted"
)

type authCookiesRequest struct {
	ClientID     string `json:"client_id"`
	Nonce        string `json:"nonce"`
	RedirectURI  string `json:"redirect_uri"`
	ResponseType string `json:"response_type"`
	Scope        string `json:"scope"`
}

type authCredentialsRequest struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type authMultifactorRequest struct {
	Type           string `json:"type"`
	Code           string `json:"code"`
	RememberDevice bool   `json:"rememberDevice"`
}

type authResponse struct {
	Type     string `json:"type"`
	Error    string `json:"error"`
	Response struct {
		Parameters struct {
			URI string `json:"uri"`
		} `json:"parameters"`
	} `json:"response"`
}

type entitlementsResponse struct {
	EntitlementsToken string `json:"entitlements_token"`
}

type userInfoResponse struct {
	Sub string `json:"sub"`
}

var defaultCookiesRequest = authCookiesRequest{
	ClientID:     "play-valorant-web-prod",
	Nonce:        "1",
	RedirectURI:  "https://playvalorant.com/opt_in",
	ResponseType: "token id_token",
	Scope:        "account openid",
}

type authClient struct {
	cfg     config.Vendor
	limiter *rate.Limiter
	metrics metrics.Recorder
	logger  *logger.Logger
}

// NewAuthClient constructs the HTTP implementation of [Authenticator].
// Handshakes started by this process are paced by a token bucket of
// cfg.AuthRate per second with burst cfg.AuthBurst; a non-positive rate
// disables pacing.
func NewAuthClient(cfg config.Vendor, rec metrics.Recorder, log *logger.Logger) Authenticator {
	limit := rate.Limit(cfg.AuthRate)
	if cfg.AuthRate <= 0 {
		limit = rate.Inf
	}
	burst := cfg.AuthBurst
	if burst <= 0 {
		burst = 1
	}
	if rec == nil {
		rec = metrics.Nop()
	}

	return &authClient{
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
		metrics: rec,
		logger:  log,
	}
}

// Authorize implements [Authenticator].
func (a *authClient) Authorize(ctx context.Context, req models.AuthRequest) (session models.AuthSession, err error) {
	defer func() {
		a.metrics.RecordAuthOutcome(AuthOutcome(err))
	}()

	if err = a.limiter.Wait(ctx); err != nil {
		return models.AuthSession{}, transportError("wait for handshake slot", err)
	}

	// a fresh client per handshake keeps the identity cookies private to it
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(a.cfg.AuthURL, "/")).
		SetTimeout(a.cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	resp, err := client.R().SetContext(ctx).SetBody(defaultCookiesRequest).Post(authorizationPath)
	if err != nil {
		return models.AuthSession{}, transportError("auth cookies", err)
	}
	if err = mapVendorStatus("auth cookies", resp); err != nil {
		return models.AuthSession{}, err
	}

	result, err := a.submit(ctx, client, authCredentialsRequest{
		Type:     authTypeAuth,
		Username: req.AccountIdentifier,
		Password: req.Secret,
		Remember: true,
	})
	if err != nil {
		return models.AuthSession{}, err
	}

	if result.Type == authTypeMultifactor {
		if req.MFACode == "" {
			return models.AuthSession{}, ErrMFARequired
		}
		result, err = a.submit(ctx, client, authMultifactorRequest{
			Type:           authTypeMultifactor,
			Code:           req.MFACode,
			RememberDevice: true,
		})
		if err != nil {
			return models.AuthSession{}, err
		}
		if result.Type == authTypeMultifactor {
			return models.AuthSession{}, fmt.Errorf("%w: code rejected", ErrMFARequired)
		}
	}

	if result.Type != authTypeResponse {
		return models.AuthSession{}, fmt.Errorf("%w: unexpected handshake step %q", ErrTransport, result.Type)
	}

	accessToken, err := accessTokenFromURI(result.Response.Parameters.URI)
	if err != nil {
		return models.AuthSession{}, err
	}

	entitlement, err := a.entitlementToken(ctx, client, accessToken)
	if err != nil {
		return models.AuthSession{}, err
	}

	externalUserID, err := a.externalUserID(ctx, client, accessToken)
	if err != nil {
		return models.AuthSession{}, err
	}

	session = models.AuthSession{
		BearerToken:      accessToken,
		EntitlementToken: entitlement,
		ExternalUserID:   externalUserID,
	}
	if !session.Complete() {
		return models.AuthSession{}, fmt.Errorf("%w: incomplete session", ErrTransport)
	}

	a.logger.Debug().Str("func", "*authClient.Authorize").
		Str("account", req.AccountIdentifier).
		Msg("vendor handshake completed")

	return session, nil
}

// submit sends one handshake step and classifies the vendor's answer.
func (a *authClient) submit(ctx context.Context, client *utils.HTTPClient, body any) (authResponse, error) {
	resp, err := client.R().SetContext(ctx).SetBody(body).Put(authorizationPath)
	if err != nil {
		return authResponse{}, transportError("auth step", err)
	}
	if err = mapVendorStatus("auth step", resp); err != nil {
		return authResponse{}, err
	}

	var result authResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return authResponse{}, transportError("decode auth step", err)
	}

	switch result.Error {
	case "":
	case authErrFailure:
		return authResponse{}, ErrInvalidCredentials
	case authErrRateLimited:
		return authResponse{}, ErrRateLimited
	case authErrMFAAttempt, authErrMFAExhausted:
		return authResponse{}, fmt.Errorf("%w: %s", ErrMFARequired, result.Error)
	default:
		return authResponse{}, fmt.Errorf("%w: auth error %q", ErrTransport, result.Error)
	}

	return result, nil
}

func (a *authClient) entitlementToken(ctx context.Context, client *utils.HTTPClient, accessToken string) (string, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetBody(struct{}{}).
		Post(strings.TrimRight(a.cfg.EntitlementsURL, "/") + entitlementsPath)
	if err != nil {
		return "", transportError("entitlements", err)
	}
	if err = mapVendorStatus("entitlements", resp); err != nil {
		return "", err
	}

	var result entitlementsResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", transportError("decode entitlements", err)
	}
	if result.EntitlementsToken == "" {
		return "", fmt.Errorf("%w: empty entitlements token", ErrTransport)
	}
	return result.EntitlementsToken, nil
}

// externalUserID reads the subject of the access token and falls back to the
// userinfo endpoint when the token cannot be inspected.
func (a *authClient) externalUserID(ctx context.Context, client *utils.HTTPClient, accessToken string) (string, error) {
	claims, err := utils.ParseTokenClaims(accessToken)
	if err == nil {
		return claims.Subject, nil
	}
	a.logger.Debug().Err(err).Str("func", "*authClient.externalUserID").Msg("access token not inspectable, asking userinfo")

	resp, err := client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetBody(struct{}{}).
		Post(userInfoPath)
	if err != nil {
		return "", transportError("userinfo", err)
	}
	if err = mapVendorStatus("userinfo", resp); err != nil {
		return "", err
	}

	var info userInfoResponse
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return "", transportError("decode userinfo", err)
	}
	if info.Sub == "" {
		return "", fmt.Errorf("%w: empty user id", ErrTransport)
	}
	return info.Sub, nil
}

// accessTokenFromURI extracts access_token from the fragment of the redirect
// URI returned by the final handshake step.
func accessTokenFromURI(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", transportError("parse redirect uri", err)
	}
	values, err := url.ParseQuery(u.Fragment)
	if err != nil {
		return "", transportError("parse redirect fragment", err)
	}
	token := values.Get("access_token")
	if token == "" {
		return "", fmt.Errorf("%w: redirect uri without access token", ErrTransport)
	}
	return token, nil
}
