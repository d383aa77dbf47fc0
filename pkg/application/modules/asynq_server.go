package modules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"nft_escrow/pkg/logx"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

// AsynqServer обрабатывает фоновые задачи из Redis.
type AsynqServer struct {
	Redis           asynq.RedisClientOpt
	Concurrency     int
	ShutdownTimeout time.Duration
}

func (s AsynqServer) Run(ctx context.Context, g *errgroup.Group, queues AsynqQueues, handlers ...AsynqHandler) {
	log := logger(ctx).With(slog.String("redis-address", s.Redis.Addr), slog.Int("redis-db", s.Redis.DB))

	srv := asynq.NewServer(s.Redis, asynq.Config{
		BaseContext:     func() context.Context { return ctx },
		Queues:          queues,
		Concurrency:     s.Concurrency,
		ShutdownTimeout: cmpDuration(s.ShutdownTimeout, defaultShutdownTimeout),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)

			log.Warn("task failed",
				slog.String(logx.FieldTaskType, task.Type()),
				slog.Int("retried", retried),
				slog.Int("max-retry", maxRetry),
				logx.Error(err),
			)
		}),
	})

	mux := asynq.NewServeMux()
	for _, h := range handlers {
		mux.HandleFunc(h.Pattern, h.Handle)
	}

	g.Go(func() error {
		if err := srv.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		log.Info("asynq server started", slog.Int("handlers", len(handlers)))

		<-ctx.Done()

		srv.Shutdown()

		log.Info("asynq server stopped")

		return nil
	})
}
