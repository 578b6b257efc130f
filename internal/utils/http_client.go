package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// resty installs a fresh in-memory cookie jar on every new client, so a
// client created per identity handshake keeps the handshake cookies
// isolated from every other handshake.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own connection pool and
// cookie jar.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewJSONClient creates an HTTPClient pointed at baseURL that sends and
// expects JSON and aborts every request after timeout.
//
// Example usage:
//
//	client := utils.NewJSONClient("https://discord.com/api/v10", 10*time.Second)
//	resp, err := client.R().SetBody(payload).Post("/users/@me/channels")
func NewJSONClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := NewHTTPClient()
	c.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return c
}
