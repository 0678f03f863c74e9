package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrSessionExpired is returned when a request fails with 401 and the refresh
// attempt (or the retried request) fails too. The token store is cleared
// before it is returned; the caller must re-authenticate.
var ErrSessionExpired = errors.New("client: session expired")

// APIError is a non-success response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: api error %d: %s", e.StatusCode, e.Message)
}

const refreshPath = "/auth/token/refresh"

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// do sends one authenticated request and decodes the enveloped response body
// into out. On 401 it refreshes the token pair and retries the original
// request exactly once; a second 401 or a failed refresh clears the store and
// returns ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	status, raw, err := c.send(ctx, method, path, body, c.tokens.Access())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		if err := c.refreshTokens(ctx); err != nil {
			c.tokens.Clear()

			return ErrSessionExpired
		}

		status, raw, err = c.send(ctx, method, path, body, c.tokens.Access())
		if err != nil {
			return err
		}

		if status == http.StatusUnauthorized {
			c.tokens.Clear()

			return ErrSessionExpired
		}
	}

	return decode(status, raw, out)
}

func (c *Client) send(ctx context.Context, method, path string, body any, accessToken string) (int, []byte, error) {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("client: encode request: %w", err)
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("client: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("client: read response: %w", err)
	}

	return resp.StatusCode, raw, nil
}

func (c *Client) refreshTokens(ctx context.Context) error {
	refresh := c.tokens.Refresh()
	if refresh == "" {
		return ErrSessionExpired
	}

	status, raw, err := c.send(ctx, http.MethodPost, refreshPath, refreshRequest{RefreshToken: refresh}, "")
	if err != nil {
		return err
	}

	var pair tokenPair
	if err := decode(status, raw, &pair); err != nil {
		return err
	}

	c.tokens.Set(pair.AccessToken, pair.RefreshToken)

	return nil
}

// decode unwraps the backend's {"data": ...} / {"error": ...} envelope.
func decode(status int, raw []byte, out any) error {
	if status >= http.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}

		if err := json.Unmarshal(raw, &e); err != nil || e.Error == "" {
			e.Error = http.StatusText(status)
		}

		return &APIError{StatusCode: status, Message: e.Error}
	}

	if out == nil {
		return nil
	}

	env := struct {
		Data any `json:"data"`
	}{Data: out}

	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}

	return nil
}
