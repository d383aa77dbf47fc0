package offer

import (
	"context"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/service/escrow"
	"nft_escrow/internal/domain/value"
)

//go:generate moq -rm -out repository_mock.gen.go . Repository:RepositoryMock
//go:generate moq -rm -out escrow_builder_mock.gen.go . EscrowBuilder:EscrowBuilderMock
//go:generate moq -rm -out metadata_source_mock.gen.go . MetadataSource:MetadataSourceMock
//go:generate moq -rm -out submission_guard_mock.gen.go . SubmissionGuard:SubmissionGuardMock
//go:generate moq -rm -out repair_queue_mock.gen.go . RepairQueue:RepairQueueMock
//go:generate moq -rm -out event_publisher_mock.gen.go . EventPublisher:EventPublisherMock

// Repository хранилище записей о предложениях. Записи не удаляются.
type Repository interface {
	Create(ctx context.Context, offer entity.Offer) (entity.Offer, error)
	GetByID(ctx context.Context, id string) (entity.Offer, error)
	QueryByAsset(ctx context.Context, nft value.Address) ([]entity.Offer, error)
	ListBySeller(ctx context.Context, seller value.Address) ([]entity.Offer, error)
	ListByBuyer(ctx context.Context, buyer value.Address) ([]entity.Offer, error)
	ListRequested(ctx context.Context, afterID string, limit int) ([]entity.Offer, error)
	// Update применяет изменение, только если статус в базе равен ExpectedStatus.
	Update(ctx context.Context, id string, update entity.OfferUpdate) (entity.Offer, error)
}

type EscrowBuilder interface {
	SubmitOfferCreation(
		ctx context.Context,
		signer escrow.Signer,
		req escrow.OfferCreation,
	) (escrow.CreationReceipt, error)
	SubmitAccept(ctx context.Context, signer escrow.Signer, escrowAddress value.Address) (entity.Receipt, error)
	SubmitCancel(ctx context.Context, signer escrow.Signer, escrowAddress value.Address) (entity.Receipt, error)
	EscrowState(ctx context.Context, escrowAddress value.Address) (entity.EscrowAccount, error)
}

type MetadataSource interface {
	Fetch(ctx context.Context, asset value.Address) (entity.AssetMetadata, error)
}

// SubmissionGuard не пускает две одновременные отправки по одному ключу.
// Acquire возвращает SubmissionInFlight, если ключ занят.
type SubmissionGuard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type RepairQueue interface {
	EnqueueRepair(ctx context.Context, offerID string) error
	EnqueueRecord(ctx context.Context, offer entity.Offer) error
}

// EventPublisher best-effort, ошибки публикации не возвращаются.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.OfferEvent)
}

type nopGuard struct{}

func (nopGuard) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}

type nopQueue struct{}

func (nopQueue) EnqueueRepair(context.Context, string) error       { return nil }
func (nopQueue) EnqueueRecord(context.Context, entity.Offer) error { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, entity.OfferEvent) {}
