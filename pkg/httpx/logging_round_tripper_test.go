package httpx_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/httpx"
	"nft_escrow/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func decodeLogLines(rq *require.Assertions, buf *bytes.Buffer) []map[string]any {
	var lines []map[string]any

	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any

		rq.NoError(json.Unmarshal(line, &entry))

		lines = append(lines, entry)
	}

	return lines
}

func TestLoggingRoundTripper(t *testing.T) {
	const ledgerReply = `{"jsonrpc":"2.0","result":{"signature":"5VERv8NMvzbJ","slot":42}}`

	testCases := []struct {
		name           string
		status         int
		masker         *httpx.SensitiveDataMaskerMock
		logFieldMaxLen int
		check          func(rq *require.Assertions, req, resp string)
	}{
		{
			name:   "Ledger reply",
			status: http.StatusOK,
			check: func(rq *require.Assertions, req, resp string) {
				rq.Contains(req, "POST / HTTP/1.1")
				rq.Contains(req, `"method":"getAccountInfo"`)
				rq.Contains(resp, "HTTP/1.1 200 OK")
				rq.Contains(resp, ledgerReply)
			},
		},
		{
			name:   "Ledger unavailable",
			status: http.StatusServiceUnavailable,
			check: func(rq *require.Assertions, _, resp string) {
				rq.Contains(resp, "HTTP/1.1 503 Service Unavailable")
			},
		},
		{
			name:   "Signature masked",
			status: http.StatusOK,
			masker: &httpx.SensitiveDataMaskerMock{
				MaskFunc: func(input []byte) []byte {
					return regexp.MustCompile(`"signature":".+?"`).ReplaceAll(input, []byte("<...>"))
				},
			},
			check: func(rq *require.Assertions, _, resp string) {
				rq.Contains(resp, `{"jsonrpc":"2.0","result":{<...>,"slot":42}}`)
				rq.NotContains(resp, "5VERv8NMvzbJ")
			},
		},
		{
			name:           "Dumps truncated",
			status:         http.StatusOK,
			logFieldMaxLen: 10,
			check: func(rq *require.Assertions, req, resp string) {
				rq.Equal("POST / HTT", req)
				rq.Equal("HTTP/1.1 2", resp)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(ledgerReply))
			}))
			defer server.Close()

			var buf bytes.Buffer

			ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

			var opts []httpx.Option

			if tc.masker != nil {
				opts = append(opts, httpx.WithSensitiveDataMasker(tc.masker))
			}

			if tc.logFieldMaxLen != 0 {
				opts = append(opts, httpx.WithLogFieldMaxLen(tc.logFieldMaxLen))
			}

			client := &http.Client{Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, opts...)}

			req, err := http.NewRequestWithContext(
				ctx, http.MethodPost, server.URL, strings.NewReader(`{"method":"getAccountInfo"}`),
			)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			rq.NoError(err)
			rq.Equal(ledgerReply, string(body))
			rq.Equal(tc.status, resp.StatusCode)

			lines := decodeLogLines(rq, &buf)
			rq.Len(lines, 2)

			request, response := lines[0], lines[1]

			const xidLen = 20

			rq.Len(request[logx.FieldRequestID], xidLen)
			rq.Equal(request[logx.FieldRequestID], response[logx.FieldRequestID])
			rq.InDelta(float64(tc.status), response[logx.FieldResponseStatus], 0)

			_, ok := response[logx.FieldDurationMs].(float64)
			rq.True(ok)

			tc.check(rq, request[logx.FieldRequestBody].(string), response[logx.FieldResponseBody].(string))
		})
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestLoggingRoundTripperTransportError(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://ledger.local/health", http.NoBody)
	rq.NoError(err)

	_, err = httpx.NewLoggingRoundTripper(failingTransport{}).RoundTrip(req) //nolint:bodyclose
	rq.ErrorContains(err, "connection refused")

	lines := decodeLogLines(rq, &buf)
	rq.Len(lines, 2)
	rq.Equal("WARN", lines[1]["level"])
	rq.Equal("round trip failed", lines[1]["msg"])
}
