package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"nft_escrow/pkg/probe"
)

func TestHandler(t *testing.T) {
	info := probe.Info{Name: "nft-escrow", Version: "v1.2.0"}

	ok := probe.Check{Name: "postgres", Ping: func(context.Context) error { return nil }}
	down := probe.Check{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }}

	testCases := []struct {
		name       string
		path       string
		checks     []probe.Check
		statusCode int
		body       string
	}{
		{
			name:       "Health ignores checks",
			path:       "/healthz",
			checks:     []probe.Check{down},
			statusCode: http.StatusOK,
			body:       `{"name":"nft-escrow","version":"v1.2.0"}`,
		},
		{
			name:       "Ready",
			path:       "/ready",
			checks:     []probe.Check{ok},
			statusCode: http.StatusOK,
			body:       `{"name":"nft-escrow","version":"v1.2.0"}`,
		},
		{
			name:       "Dependency down",
			path:       "/ready",
			checks:     []probe.Check{ok, down},
			statusCode: http.StatusServiceUnavailable,
			body:       `{"name":"nft-escrow","version":"v1.2.0","failed":{"redis":"connection refused"}}`,
		},
		{
			name:       "Unknown path",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
			body:       "404 page not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			srv := httptest.NewServer(probe.NewHandler(info, tc.checks...))
			defer srv.Close()

			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+tc.path, http.NoBody)
			rq.NoError(err)

			resp, err := srv.Client().Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.statusCode, resp.StatusCode)

			if resp.Header.Get("Content-Type") != "application/json" {
				rq.Contains(string(body), tc.body)

				return
			}

			rq.JSONEq(tc.body, string(body))
		})
	}
}
