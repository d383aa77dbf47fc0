// Package idgen produces record identifiers. A Fallback generator never
// fails: when the primary source is unavailable it switches to a locally
// generated random identifier.
package idgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/xid"

	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Generator interface {
	NewID(ctx context.Context) (string, error)
}

type GeneratorFunc func(ctx context.Context) (string, error)

func (f GeneratorFunc) NewID(ctx context.Context) (string, error) {
	return f(ctx)
}

func UUID() string {
	return uuid.NewString()
}

func XID() string {
	return xid.New().String()
}

type Fallback struct {
	primary  Generator
	fallback func() string
}

func NewFallback(primary Generator, fallback func() string) Fallback {
	if fallback == nil {
		fallback = UUID
	}

	return Fallback{
		primary:  primary,
		fallback: fallback,
	}
}

func (f Fallback) NewID(ctx context.Context) (string, error) {
	if f.primary == nil {
		return f.fallback(), nil
	}

	id, err := f.primary.NewID(ctx)
	if err != nil || id == "" {
		logger(ctx).Warn("primary id generator unavailable, using fallback", logx.Error(err))

		return f.fallback(), nil
	}

	return id, nil
}

// Local is the generator used when no store-native source is configured.
func Local() Generator {
	return GeneratorFunc(func(context.Context) (string, error) {
		return XID(), nil
	})
}

var _ Generator = Fallback{}
