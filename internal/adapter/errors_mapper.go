package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/utils"
	"github.com/go-resty/resty/v2"
)

// Discord JSON error codes.
const (
	discordUnknownUser       = 10013
	discordCannotMessageDMs  = 50007
	discordInvalidRecipients = 50033
)

const retryMinWait = 50 * time.Millisecond

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTransport, op, err)
}

func responseBody(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}

func mapVendorStatus(op string, resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, op)
	default:
		return fmt.Errorf("%w: %s: http %d: %s", ErrTransport, op, code, responseBody(resp))
	}
}

type discordError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func mapDiscordStatus(op string, resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	var apiErr discordError
	_ = json.Unmarshal(resp.Body(), &apiErr)

	switch {
	case code == http.StatusNotFound || apiErr.Code == discordUnknownUser || apiErr.Code == discordInvalidRecipients:
		return fmt.Errorf("%w: %s: %s", ErrRecipientNotFound, op, responseBody(resp))
	case code == http.StatusForbidden || apiErr.Code == discordCannotMessageDMs:
		return fmt.Errorf("%w: %s: %s", ErrRecipientBlocked, op, responseBody(resp))
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, op)
	default:
		return fmt.Errorf("%w: %s: http %d: %s", ErrTransport, op, code, responseBody(resp))
	}
}

// withRateLimitRetry makes client retry 429 answers up to cfg.RetryCount
// times. The wait follows Retry-After, or the retry_after body field,
// capped at cfg.RetryMaxWait. Transport errors are not retried.
func withRateLimitRetry(client *utils.HTTPClient, cfg config.Discord) {
	if cfg.RetryCount <= 0 {
		return
	}

	client.SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(retryMinWait).
		SetRetryAfter(discordRetryAfter).
		AddRetryCondition(func(resp *resty.Response, _ error) bool {
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		})
	if cfg.RetryMaxWait > 0 {
		client.SetRetryMaxWaitTime(cfg.RetryMaxWait)
	}
}

func discordRetryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp == nil {
		return 0, nil
	}
	if v := resp.Header().Get("Retry-After"); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil && secs >= 0 {
			return time.Duration(secs * float64(time.Second)), nil
		}
	}

	var body struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.RetryAfter > 0 {
		return time.Duration(body.RetryAfter * float64(time.Second)), nil
	}
	return 0, nil
}

// AuthOutcome names the handshake result for metrics and logs.
func AuthOutcome(err error) string {
	switch {
	case err == nil:
		return "authenticated"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrMFARequired):
		return "mfa_required"
	default:
		return "transport_error"
	}
}
