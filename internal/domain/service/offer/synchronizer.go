package offer

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/logx"
)

// Reconciled результат сверки записей с леджером для одной пары актив+продавец.
type Reconciled struct {
	Canonical *entity.Offer
	// IsActive: запись REQUESTED и леджер это не опровергает.
	IsActive bool
	// Stale: запись REQUESTED, но эскроу уже закрыт или отсутствует.
	Stale bool
	// Verified: активность подтверждена леджером (или проверка не нужна).
	Verified bool
	// EscrowMissing: счёта нет и исход неизвестен, починка сама не закроет запись.
	EscrowMissing bool
	Escrow        entity.EscrowAccount
}

// SelectCanonical выбирает последнюю по активности запись продавца.
// При равном времени побеждает больший id, чтобы выбор был детерминирован.
func SelectCanonical(records []entity.Offer, seller value.Address) (entity.Offer, bool) {
	var (
		best  entity.Offer
		found bool
	)

	for _, r := range records {
		if r.SellerAddress != seller {
			continue
		}

		if !found || newer(r, best) {
			best = r
			found = true
		}
	}

	return best, found
}

func newer(a, b entity.Offer) bool {
	at, bt := a.LastActivity(), b.LastActivity()
	if !at.Equal(bt) {
		return at.After(bt)
	}

	return a.ID > b.ID
}

// SortNewestFirst порядок строк в таблицах.
func SortNewestFirst(records []entity.Offer) {
	slices.SortStableFunc(records, func(a, b entity.Offer) int {
		switch {
		case newer(a, b):
			return -1
		case newer(b, a):
			return 1
		default:
			return 0
		}
	})
}

type Synchronizer struct {
	repo   Repository
	ledger EscrowBuilder
	queue  RepairQueue
}

func NewSynchronizer(repo Repository, ledger EscrowBuilder, queue RepairQueue) *Synchronizer {
	if queue == nil {
		queue = nopQueue{}
	}

	return &Synchronizer{
		repo:   repo,
		ledger: ledger,
		queue:  queue,
	}
}

// Reconcile ничего не пишет в хранилище. Найденный дрейф уходит в очередь починки.
func (s *Synchronizer) Reconcile(ctx context.Context, nft, seller value.Address) (Reconciled, error) {
	records, err := s.repo.QueryByAsset(ctx, nft)
	if err != nil {
		return Reconciled{}, fmt.Errorf("repo.QueryByAsset: %w", err)
	}

	canonical, ok := SelectCanonical(records, seller)
	if !ok {
		return Reconciled{Verified: true}, nil
	}

	result := Reconciled{Canonical: &canonical}

	if !canonical.IsRequested() {
		result.Verified = true

		return result, nil
	}

	account, err := s.ledger.EscrowState(ctx, canonical.EscrowAddress)
	if err != nil {
		logger(ctx).Warn("escrow state unavailable, showing unverified record",
			slog.String(logx.FieldOfferID, canonical.ID),
			logx.Error(err),
		)

		result.IsActive = true

		return result, nil
	}

	result.Escrow = account
	result.Verified = true

	if account.IsOpen() {
		result.IsActive = true

		return result, nil
	}

	result.Stale = true
	result.EscrowMissing = account.IsMissing()
	driftDetected.WithLabelValues(driftKindStale).Inc()

	logger(ctx).Warn("record claims REQUESTED but escrow is settled",
		slog.String(logx.FieldOfferID, canonical.ID),
		logx.Stringer(logx.FieldEscrowAddress, canonical.EscrowAddress),
		slog.Bool("escrow-exists", account.Exists),
		slog.String("escrow-resolution", string(account.Resolution)),
	)

	if err := s.queue.EnqueueRepair(ctx, canonical.ID); err != nil {
		logger(ctx).Error("enqueue repair", logx.Error(err))
	}

	return result, nil
}
