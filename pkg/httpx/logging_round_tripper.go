package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"nft_escrow/pkg/logx"
)

//go:generate moq -rm -out sensitive_data_masker_mock.gen.go . sensitiveDataMasker:SensitiveDataMaskerMock
type sensitiveDataMasker interface {
	Mask([]byte) []byte
}

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(masker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.masker = masker
	}
}

// LoggingRoundTripper пишет в лог исходящий запрос и ответ под общим request-id.
type LoggingRoundTripper struct {
	next           http.RoundTripper
	masker         sensitiveDataMasker
	logFieldMaxLen int
}

func NewLoggingRoundTripper(next http.RoundTripper, opts ...Option) LoggingRoundTripper {
	rt := LoggingRoundTripper{
		next:   next,
		masker: logx.NopSensitiveDataMasker{},
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := logger(ctx).With(slog.String(logx.FieldRequestID, xid.New().String()))

	reqDump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		log.Error("httputil.DumpRequestOut", logx.Error(err))
	}

	log.Info(logx.FieldHTTPRequest, slog.String(logx.FieldRequestBody, rt.dump(reqDump)))

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		log.Warn("round trip failed",
			logx.Error(err),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)

		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Error("httputil.DumpResponse", logx.Error(err))
	}

	log.Info(logx.FieldHTTPResponse,
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, rt.dump(respDump)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

func (rt LoggingRoundTripper) dump(b []byte) string {
	return string(rt.masker.Mask(logx.Truncate(b, rt.logFieldMaxLen)))
}
