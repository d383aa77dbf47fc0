package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	// TypeOfferRepair сверить запись REQUESTED с леджером.
	TypeOfferRepair = "offer:repair"
	// TypeOfferRecord дописать запись, если эскроу создан, а запись нет.
	TypeOfferRecord = "offer:record"
)

type RepairPayload struct {
	OfferID string `json:"offerId"`
}

type RecordPayload struct {
	ID            string          `json:"id"`
	NFTAddress    string          `json:"nftAddress"`
	SellerAddress string          `json:"sellerAddress"`
	BuyerAddress  string          `json:"buyerAddress"`
	EscrowAddress string          `json:"escrowAddress"`
	OfferedAmount decimal.Decimal `json:"offeredAmount"`
	Fee           decimal.Decimal `json:"fee"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewRepairTask(offerID string) (*asynq.Task, error) {
	payload, err := json.Marshal(RepairPayload{OfferID: offerID})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeOfferRepair, payload), nil
}

func ParseRepairTask(task *asynq.Task) (RepairPayload, error) {
	var p RepairPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return RepairPayload{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if p.OfferID == "" {
		return RepairPayload{}, fmt.Errorf("%s: empty offer id", TypeOfferRepair)
	}

	return p, nil
}

func NewRecordTask(offer entity.Offer) (*asynq.Task, error) {
	payload, err := json.Marshal(RecordPayload{
		ID:            offer.ID,
		NFTAddress:    offer.NFTAddress.String(),
		SellerAddress: offer.SellerAddress.String(),
		BuyerAddress:  offer.BuyerAddress.String(),
		EscrowAddress: offer.EscrowAddress.String(),
		OfferedAmount: offer.OfferedAmount.Decimal(),
		Fee:           offer.Fee.Decimal(),
		CreatedAt:     offer.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeOfferRecord, payload), nil
}

// ParseRecordTask восстанавливает запись REQUESTED; статус в задаче не хранится.
func ParseRecordTask(task *asynq.Task) (entity.Offer, error) {
	var p RecordPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return entity.Offer{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if p.ID == "" {
		return entity.Offer{}, fmt.Errorf("%s: empty offer id", TypeOfferRecord)
	}

	return entity.Offer{
		ID:            p.ID,
		NFTAddress:    value.Address(p.NFTAddress),
		SellerAddress: value.Address(p.SellerAddress),
		BuyerAddress:  value.Address(p.BuyerAddress),
		EscrowAddress: value.Address(p.EscrowAddress),
		OfferedAmount: value.NewAmount(p.OfferedAmount),
		Fee:           value.NewAmount(p.Fee),
		Status:        value.OfferStatusRequested,
		CreatedAt:     p.CreatedAt,
	}, nil
}
