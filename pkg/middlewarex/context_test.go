package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/middlewarex"
)

func TestWalletAddress(t *testing.T) {
	testCases := []struct {
		name    string
		header  string
		present bool
		want    contextx.WalletAddress
	}{
		{
			name:    "Header present",
			header:  "4Nd1mYw3J9d8gX7bNvTq1Hkq9o2CwGKz2pLq8yH5R3sT",
			present: true,
			want:    "4Nd1mYw3J9d8gX7bNvTq1Hkq9o2CwGKz2pLq8yH5R3sT",
		},
		{
			name:    "Header padded",
			header:  "  4Nd1mYw3J9d8gX7bNvTq1Hkq9o2CwGKz2pLq8yH5R3sT ",
			present: true,
			want:    "4Nd1mYw3J9d8gX7bNvTq1Hkq9o2CwGKz2pLq8yH5R3sT",
		},
		{
			name:    "Header missing",
			present: false,
		},
		{
			name:    "Header blank",
			header:  "   ",
			present: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var (
				got     contextx.WalletAddress
				present bool
			)

			handler := middlewarex.WalletAddress(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				address, err := contextx.WalletAddressFromContext(r.Context())
				present = err == nil
				got = address
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.header != "" {
				req.Header.Set("X-Wallet-Address", tc.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			rq.Equal(tc.present, present)
			rq.Equal(tc.want, got)
		})
	}
}

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	var got contextx.TraceID

	handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)
		got = traceID
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Trace-Id", "from-gateway")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	rq.Equal(contextx.TraceID("from-gateway"), got)
	rq.Equal("from-gateway", rec.Header().Get("X-Trace-Id"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.NotEmpty(got)
	rq.NotEqual(contextx.TraceID("from-gateway"), got)
	rq.Equal(got.String(), rec.Header().Get("X-Trace-Id"))
}

func TestLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middlewarex.TraceID(middlewarex.Logger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		contextx.LoggerFromContextOrDefault(r.Context()).Info("inside")
	})))

	req := httptest.NewRequest(http.MethodPost, "/v1/offers", http.NoBody)
	req.Header.Set("X-Trace-Id", "trace-1")
	req = req.WithContext(contextx.WithLogger(req.Context(), base))

	handler.ServeHTTP(httptest.NewRecorder(), req)

	rq.Contains(buf.String(), `"trace-id":"trace-1"`)
	rq.Contains(buf.String(), `"http-method":"POST"`)
	rq.Contains(buf.String(), `"url":"/v1/offers"`)
}
