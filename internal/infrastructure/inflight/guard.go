package inflight

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"

	"nft_escrow/internal/domain"
	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// снимаем ключ, только если он всё ещё наш
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`) //nolint:gochecknoglobals

const keyPrefix = "nft_escrow:inflight:"

// Guard короткая блокировка в redis на время одной отправки. Атомарность
// сделки обеспечивает леджер, поэтому при недоступном redis пропускаем.
type Guard struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewGuard(client redis.UniversalClient, ttl time.Duration) *Guard {
	return &Guard{client: client, ttl: ttl}
}

func (g *Guard) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := xid.New().String()

	ok, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		logger(ctx).Warn("inflight guard unavailable", slog.String("key", key), logx.Error(err))

		return func() {}, nil
	}

	if !ok {
		return nil, domain.NewError(errcodes.SubmissionInFlight, "another submission for this offer is in progress")
	}

	return func() {
		releaseCtx := context.WithoutCancel(ctx)

		if err := releaseScript.Run(releaseCtx, g.client, []string{redisKey}, token).Err(); err != nil {
			logger(ctx).Warn("inflight guard release", slog.String("key", key), logx.Error(err))
		}
	}, nil
}
