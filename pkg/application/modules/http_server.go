package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"nft_escrow/pkg/logx"
)

const (
	defaultShutdownTimeout   = 5 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

// HTTPServer поднимает handler на Address и гасит его по отмене ctx.
// Используется и для API, и для probe/metrics.
type HTTPServer struct {
	Name              string
	Address           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func (h HTTPServer) Run(ctx context.Context, g *errgroup.Group, handler http.Handler) {
	srv := &http.Server{
		Addr:              h.Address,
		Handler:           handler,
		ReadHeaderTimeout: cmpDuration(h.ReadHeaderTimeout, defaultReadHeaderTimeout),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	log := logger(ctx).With(slog.String("server", h.Name), slog.String("address", h.Address))

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(
				context.WithoutCancel(ctx), cmpDuration(h.ShutdownTimeout, defaultShutdownTimeout),
			)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("server.Shutdown", logx.Error(err))
			}
		}()

		log.Info("http server started")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s.ListenAndServe: %w", h.Name, err)
		}

		log.Info("http server stopped")

		return nil
	})
}

func cmpDuration(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}

	return d
}
