package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// AuthCookieName — cookie, в которой сервер ждёт JWT.
const AuthCookieName = "auth_token"

// Client — HTTP-клиент CLI. Переназначается в тестах.
var Client = &http.Client{Timeout: 30 * time.Second}

// GetJSON sends a GET request. If token is non-empty, it is passed as auth cookie.
func GetJSON(ctx context.Context, url, token string) (*http.Response, []byte, error) {
	return do(ctx, http.MethodGet, url, nil, token)
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
// json.RawMessage payload is sent as is.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return do(ctx, http.MethodPost, url, bytes.NewReader(b), token)
}

func do(ctx context.Context, method, url string, body io.Reader, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	}
	resp, err := Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, data, nil
}
