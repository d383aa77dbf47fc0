package middlewarex

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/rs/xid"

	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/logx"
)

const (
	headerNameTraceID       = "X-Trace-Id"
	headerNameWalletAddress = "X-Wallet-Address"
)

// TraceID берёт id из заголовка или выдаёт новый и возвращает его в ответе.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := strings.TrimSpace(r.Header.Get(headerNameTraceID))
		if traceID == "" {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logger кладёт в контекст логгер запроса. Должен стоять после TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		attrs := []any{
			logx.Stringer(logx.FieldURL, r.URL),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		}

		if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
			attrs = append(attrs, logx.Stringer(logx.FieldTraceID, traceID))
		} else {
			logger(ctx).Warn("request without trace id", logx.Error(err))
		}

		ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WalletAddress puts the caller's wallet address into the context and the
// request logger. Requests without the header are anonymous viewers.
func WalletAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := strings.TrimSpace(r.Header.Get(headerNameWalletAddress))
		if address == "" {
			next.ServeHTTP(w, r)

			return
		}

		ctx := contextx.WithWalletAddress(r.Context(), contextx.WalletAddress(address))
		ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldWalletAddress, address)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
