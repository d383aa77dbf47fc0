package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"nft_escrow/internal/config"
	"nft_escrow/internal/domain/service/escrow"
	"nft_escrow/internal/domain/service/fee"
	"nft_escrow/internal/domain/service/offer"
	"nft_escrow/internal/domain/value"
	"nft_escrow/internal/infrastructure/inflight"
	"nft_escrow/internal/infrastructure/ledger"
	"nft_escrow/internal/infrastructure/metadata"
	"nft_escrow/internal/infrastructure/notifier"
	"nft_escrow/internal/infrastructure/persistence"
	"nft_escrow/internal/infrastructure/queue"
	"nft_escrow/internal/infrastructure/signer"
	"nft_escrow/internal/server"
	"nft_escrow/internal/worker"
	"nft_escrow/pkg/application/connectors"
	"nft_escrow/pkg/application/modules"
	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/idgen"
	"nft_escrow/pkg/logx"
	"nft_escrow/pkg/metrics"
	"nft_escrow/pkg/middlewarex"
	"nft_escrow/pkg/probe"
)

func Run(ctx context.Context) error { //nolint:funlen
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.NewLogger(os.Stdout, cfg.App.LogLevel, cfg.App.LogJSON).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	// 2. Storage
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	rds := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rds.Client(ctx)
	defer rds.Close(ctx)

	offerRepo := persistence.NewOfferRepository(db)

	// 3. External systems
	ledgerClient := ledger.NewClient(ledger.Config{
		URL:               cfg.Ledger.URL,
		AuthToken:         cfg.Ledger.AuthToken,
		RequestsPerSecond: cfg.Ledger.RequestsPerSecond,
		Burst:             cfg.Ledger.Burst,
		Timeout:           cfg.Ledger.Timeout,
		LogFieldMaxLen:    cfg.App.LogFieldMaxLen,
	})

	signerClient := signer.NewClient(signer.Config{
		URL:            cfg.Signer.URL,
		AuthToken:      cfg.Signer.AuthToken,
		Timeout:        cfg.Signer.Timeout,
		LogFieldMaxLen: cfg.App.LogFieldMaxLen,
	})

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	}

	asynqClient := asynq.NewClient(redisOpt)
	defer func() {
		if err := asynqClient.Close(); err != nil {
			log.Error("asynqClient.Close", logx.Error(err))
		}
	}()

	repairQueue := queue.NewEnqueuer(asynqClient, cfg.Queue.Name)

	// 4. Services
	offerService := offer.NewService(
		offerRepo,
		escrow.NewBuilder(ledgerClient, cfg.Offer.ProgramID),
		fee.NewCalculator(cfg.Offer.Fee()),
		idgen.NewFallback(offerRepo, idgen.UUID),
	).
		WithGuard(inflight.NewGuard(redisClient, cfg.Offer.InFlightTTL)).
		WithRepairQueue(repairQueue).
		WithMissingEscrowGrace(cfg.Offer.MissingEscrowGrace)

	if cfg.Metadata.URL != "" {
		offerService.WithMetadata(metadata.NewClient(metadata.Config{
			URL:            cfg.Metadata.URL,
			CacheTTL:       cfg.Metadata.CacheTTL,
			Timeout:        cfg.Metadata.Timeout,
			LogFieldMaxLen: cfg.App.LogFieldMaxLen,
		}))
	}

	g, ctx := errgroup.WithContext(ctx)

	if len(cfg.Kafka.Brokers) > 0 {
		writer := notifier.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := writer.Close(); err != nil {
				log.Error("kafkaWriter.Close", logx.Error(err))
			}
		}()

		events := notifier.NewOfferEvents(writer)
		offerService.WithPublisher(events)

		g.Go(func() error {
			return events.Run(ctx)
		})
	} else {
		log.Warn("kafka brokers are not configured, offer events are not published")
	}

	// 5. Modules
	modules.HTTPServer{Name: "probe", Address: cfg.Probe.ListenAddress}.Run(ctx, g, probe.NewHandler(
		probe.Info{Name: cfg.App.Name, Version: cfg.App.Version},
		probe.Check{Name: "postgres", Ping: pg.Ping},
		probe.Check{Name: "redis", Ping: rds.Ping},
	))

	modules.HTTPServer{Name: "metrics", Address: cfg.Metrics.ListenAddress}.Run(ctx, g, metrics.NewHandler(nil))

	repairHandler := worker.NewRepairHandler(offerService)

	modules.AsynqServer{
		Redis:           redisOpt,
		Concurrency:     cfg.Queue.Concurrency,
		ShutdownTimeout: cfg.Queue.ShutdownTimeout,
	}.Run(
		ctx,
		g,
		modules.AsynqQueues{cfg.Queue.Name: 1},
		modules.AsynqHandler{Pattern: queue.TypeOfferRepair, Handle: repairHandler.HandleRepair},
		modules.AsynqHandler{Pattern: queue.TypeOfferRecord, Handle: repairHandler.HandleRecord},
	)

	if cfg.Watcher.Enabled {
		// сторож расходует не больше половины лимита запросов к леджеру
		watcher := worker.NewEscrowWatcher(offerService, repairQueue).
			WithInterval(cfg.Watcher.Interval).
			WithBatchSize(cfg.Watcher.BatchSize).
			WithRateControl(2*time.Second, int(cfg.Ledger.RequestsPerSecond))

		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("watcher.Start: %w", err)
		}
		defer watcher.Stop()
	}

	router := chi.NewRouter()
	router.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.WalletAddress,
		middlewarex.HTTPLogging(logx.NewSensitiveDataMasker(), cfg.App.LogFieldMaxLen),
	)

	signerFor := func(wallet value.Address) escrow.Signer {
		return signerClient.For(wallet)
	}

	server.NewServer(
		server.NewOfferServer(offerService, signerFor),
	).RegisterRoutes(router)

	modules.HTTPServer{
		Name:              "api",
		Address:           cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	log.Info("application started")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}
