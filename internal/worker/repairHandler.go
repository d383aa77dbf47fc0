package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/service/offer"
	"nft_escrow/internal/infrastructure/queue"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/logx"
)

//go:generate moq -rm -out offer_repairer_mock.gen.go . OfferRepairer:OfferRepairerMock

type OfferRepairer interface {
	Repair(ctx context.Context, offerID string) (offer.RepairOutcome, error)
	RecordOffer(ctx context.Context, o entity.Offer) error
}

// RepairHandler обрабатывает задачи восстановления записей.
type RepairHandler struct {
	offers OfferRepairer
}

func NewRepairHandler(offers OfferRepairer) *RepairHandler {
	return &RepairHandler{offers: offers}
}

func (h *RepairHandler) HandleRepair(ctx context.Context, task *asynq.Task) error {
	payload, err := queue.ParseRepairTask(task)
	if err != nil {
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	result, err := h.offers.Repair(ctx, payload.OfferID)
	if err != nil {
		if domain.HasCode(err, errcodes.OfferNotFound) {
			return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
		}

		return fmt.Errorf("offers.Repair: %w", err)
	}

	logger(ctx).Debug("offer repair task done",
		slog.String(logx.FieldOfferID, payload.OfferID),
		slog.String("outcome", string(result)),
	)

	return nil
}

func (h *RepairHandler) HandleRecord(ctx context.Context, task *asynq.Task) error {
	o, err := queue.ParseRecordTask(task)
	if err != nil {
		return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
	}

	if err := h.offers.RecordOffer(ctx, o); err != nil {
		if domain.HasCode(err, errcodes.OfferAlreadyActive) {
			logger(ctx).Warn("offer record conflicts with an active offer",
				slog.String(logx.FieldOfferID, o.ID),
				logx.Error(err),
			)

			return fmt.Errorf("%w: %w", asynq.SkipRetry, err)
		}

		return fmt.Errorf("offers.RecordOffer: %w", err)
	}

	return nil
}
