package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"nft_escrow/internal/config"
	"nft_escrow/internal/domain/service/escrow"
	"nft_escrow/internal/domain/service/fee"
	"nft_escrow/internal/domain/service/offer"
	"nft_escrow/internal/infrastructure/ledger"
	"nft_escrow/internal/infrastructure/persistence"
	"nft_escrow/pkg/application/connectors"
	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/idgen"
	"nft_escrow/pkg/logx"
)

// go run ./cmd/reconcile [-dry-run] [-batch 200]
//
// Разовый проход по всем записям REQUESTED: запись, эскроу которой на леджере
// уже закрыт, приводится к его итогу. С -dry-run только печатает расхождения.

func main() {
	dryRun := flag.Bool("dry-run", false, "only report drifted offers")
	batch := flag.Int("batch", 200, "records per page")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logx.NewLogger(os.Stdout, slog.LevelDebug, false)
	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx, log, *dryRun, *batch); err != nil {
		log.Error("reconcile failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	log.Info("reconcile finished")
}

func run(ctx context.Context, log *slog.Logger, dryRun bool, batch int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	repo := persistence.NewOfferRepository(db)

	ledgerClient := ledger.NewClient(ledger.Config{
		URL:               cfg.Ledger.URL,
		AuthToken:         cfg.Ledger.AuthToken,
		RequestsPerSecond: cfg.Ledger.RequestsPerSecond,
		Burst:             cfg.Ledger.Burst,
		Timeout:           cfg.Ledger.Timeout,
		LogFieldMaxLen:    cfg.App.LogFieldMaxLen,
	})

	svc := offer.NewService(
		repo,
		escrow.NewBuilder(ledgerClient, cfg.Offer.ProgramID),
		fee.NewCalculator(cfg.Offer.Fee()),
		idgen.NewFallback(repo, idgen.UUID),
	).WithMissingEscrowGrace(cfg.Offer.MissingEscrowGrace)

	var (
		cursor   string
		found    int
		repaired int
	)

	for {
		drifted, lastID, err := svc.DriftedOffers(ctx, cursor, batch, nil)
		if err != nil {
			return fmt.Errorf("svc.DriftedOffers: %w", err)
		}

		for _, o := range drifted {
			found++

			if dryRun {
				log.Info("drifted offer",
					slog.String(logx.FieldOfferID, o.ID),
					logx.Stringer(logx.FieldNFTAddress, o.NFTAddress),
					logx.Stringer(logx.FieldEscrowAddress, o.EscrowAddress),
				)

				continue
			}

			outcome, err := svc.Repair(ctx, o.ID)
			if err != nil {
				log.Error("repair failed", slog.String(logx.FieldOfferID, o.ID), logx.Error(err))

				continue
			}

			if outcome == offer.RepairApplied {
				repaired++
			}
		}

		if lastID == cursor {
			break
		}

		cursor = lastID
	}

	log.Info("reconcile summary",
		slog.Int("drifted", found),
		slog.Int("repaired", repaired),
		slog.Bool("dry-run", dryRun),
	)

	return nil
}
