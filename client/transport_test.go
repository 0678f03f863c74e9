package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RefreshRetryOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("401 then refresh then retried request succeeds", func(t *testing.T) {
		var venueCalls, refreshCalls int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/venues/1":
				venueCalls++

				if r.Header.Get("Authorization") != "Bearer fresh-access" {
					w.WriteHeader(http.StatusUnauthorized)
					_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})

					return
				}

				_ = json.NewEncoder(w).Encode(map[string]any{
					"data": map[string]any{"venue": map[string]any{"id": 1, "name": "Smash Arena"}},
				})
			case "/auth/token/refresh":
				refreshCalls++

				var body map[string]string
				_ = json.NewDecoder(r.Body).Decode(&body)
				assert.Equal(t, "refresh-1", body["refresh_token"])

				_ = json.NewEncoder(w).Encode(map[string]any{
					"data": map[string]string{
						"access_token":  "fresh-access",
						"refresh_token": "refresh-2",
					},
				})
			default:
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		tokens := NewMemoryTokenStore("stale-access", "refresh-1")
		c := New(server.URL, tokens)

		res, err := c.Venue(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Smash Arena", res.Venue.Name)
		assert.Equal(t, 2, venueCalls)
		assert.Equal(t, 1, refreshCalls)
		assert.Equal(t, "fresh-access", tokens.Access())
		assert.Equal(t, "refresh-2", tokens.Refresh())
	})

	t.Run("retried request fails again: session expired, store cleared", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/token/refresh" {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"data": map[string]string{"access_token": "a2", "refresh_token": "r2"},
				})

				return
			}

			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		tokens := NewMemoryTokenStore("a1", "r1")
		c := New(server.URL, tokens)

		_, err := c.Venue(ctx, 1)

		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Empty(t, tokens.Access())
		assert.Empty(t, tokens.Refresh())
	})

	t.Run("refresh endpoint rejects: session expired, store cleared", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid refresh token"})
		}))
		defer server.Close()

		tokens := NewMemoryTokenStore("a1", "r1")
		c := New(server.URL, tokens)

		_, err := c.Venue(ctx, 1)

		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Empty(t, tokens.Refresh())
	})
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "venue not found"})
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryTokenStore("a", "r"))

	_, err := c.Venue(context.Background(), 42)

	var apiErr *APIError

	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "venue not found", apiErr.Message)
}
