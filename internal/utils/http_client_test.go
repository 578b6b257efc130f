package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_IndependentCookieJars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err != nil {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
			w.WriteHeader(http.StatusCreated)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	first := NewHTTPClient()
	resp, err := first.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = first.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode(), "cookie must be replayed by the same client")

	second := NewHTTPClient()
	resp, err = second.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode(), "cookie must not leak into another client")
}

func TestNewJSONClient_SetsBaseURLAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewJSONClient(srv.URL, time.Second)
	resp, err := c.R().Get("/ping")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, time.Second, c.GetClient().Timeout)
}
