package middlewarex

import (
	"bytes"
	"cmp"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"nft_escrow/pkg/logx"
)

// HTTPLogging пишет в лог запрос и ответ одной парой записей. Дампы проходят
// через masker и обрезаются до logFieldMaxLen.
//
// The trouble with optional interfaces:
// https://blog.merovius.de/posts/2017-07-30-the-trouble-with-optional-interfaces/
func HTTPLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			dump, err := httputil.DumpRequest(r, dumpBody)
			if err != nil {
				logger(ctx).Error("httputil.DumpRequest", logx.Error(err))
			}

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(logx.Truncate(dump, logFieldMaxLen)))),
			)

			lw := mutil.WrapWriter(w)

			var body bytes.Buffer

			lw.Tee(&body)

			next.ServeHTTP(lw, r)

			var headers bytes.Buffer

			if err := w.Header().WriteSubset(&headers, nil); err != nil {
				logger(ctx).Error("header.WriteSubset", logx.Error(err))
			}

			// без явного WriteHeader mutil отдаёт статус 0
			status := cmp.Or(lw.Status(), http.StatusOK)

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}

			logger(ctx).Log(ctx, level,
				logx.FieldHTTPResponse,
				slog.Int(logx.FieldResponseStatus, status),
				slog.String(logx.FieldResponseHeaders, string(sensitiveDataMasker.Mask(headers.Bytes()))),
				slog.String(logx.FieldResponseBody, string(sensitiveDataMasker.Mask(logx.Truncate(body.Bytes(), logFieldMaxLen)))),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			)
		})
	}
}
