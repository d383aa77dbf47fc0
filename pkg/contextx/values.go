package contextx

import (
	"context"
	"fmt"
)

// TraceID связывает логи одного запроса и попадает в supportId ответа.
type TraceID string

func (t TraceID) String() string {
	return string(t)
}

// WalletAddress is the ledger account the caller claims to control. It is
// only a claim: every state-changing call still goes through the signer.
type WalletAddress string

func (w WalletAddress) String() string {
	return string(w)
}

type (
	contextKeyTraceID       struct{}
	contextKeyWalletAddress struct{}
)

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	return valueFromContext[TraceID](ctx, contextKeyTraceID{}, "trace id")
}

func WithWalletAddress(ctx context.Context, address WalletAddress) context.Context {
	return context.WithValue(ctx, contextKeyWalletAddress{}, address)
}

func WalletAddressFromContext(ctx context.Context) (WalletAddress, error) {
	return valueFromContext[WalletAddress](ctx, contextKeyWalletAddress{}, "wallet address")
}

func valueFromContext[T any](ctx context.Context, key any, name string) (T, error) {
	v, ok := ctx.Value(key).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, ErrNoValue)
	}

	return v, nil
}
