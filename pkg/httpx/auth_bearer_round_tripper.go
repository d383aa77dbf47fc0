package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrEmptyToken = errors.New("bearer token is not configured")

type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

// StaticToken authenticator с заранее выданным токеном.
type StaticToken string

func (t StaticToken) Authenticate(context.Context) error {
	if t == "" {
		return ErrEmptyToken
	}

	return nil
}

func (t StaticToken) BearerToken() string {
	return string(t)
}

// AuthBearerRoundTripper подставляет Bearer токен. На 401 повторяет запрос
// один раз, если после Authenticate токен сменился.
type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(next http.RoundTripper, authenticator authenticator) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token := rt.authenticator.BearerToken()
	if token == "" {
		if err := rt.authenticator.Authenticate(ctx); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}

		token = rt.authenticator.BearerToken()
	}

	resp, err := rt.next.RoundTrip(withBearer(req, token))
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode != http.StatusUnauthorized || !replayable(req) {
		return resp, nil
	}

	if err := rt.authenticator.Authenticate(ctx); err != nil {
		resp.Body.Close()

		return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
	}

	refreshed := rt.authenticator.BearerToken()
	if refreshed == token {
		return resp, nil
	}

	resp.Body.Close()

	retry := withBearer(req, refreshed)

	if hasBody(req) {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("req.GetBody: %w", err)
		}

		retry.Body = body
	}

	resp, err = rt.next.RoundTrip(retry)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}

// RoundTripper не должен менять исходный запрос.
func withBearer(req *http.Request, token string) *http.Request {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)

	return clone
}

func hasBody(req *http.Request) bool {
	return req.Body != nil && req.Body != http.NoBody
}

func replayable(req *http.Request) bool {
	return !hasBody(req) || req.GetBody != nil
}
