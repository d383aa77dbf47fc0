package entity

import (
	"time"

	"nft_escrow/internal/domain/value"
)

// Offer запись о предложении продажи одного актива.
type Offer struct {
	ID            string
	NFTAddress    value.Address
	SellerAddress value.Address
	BuyerAddress  value.Address
	EscrowAddress value.Address
	OfferedAmount value.Amount
	Fee           value.Amount
	Status        value.OfferStatus
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// LastActivity is updatedAt when the offer has transitioned, createdAt otherwise.
func (o Offer) LastActivity() time.Time {
	if o.UpdatedAt != nil && !o.UpdatedAt.IsZero() {
		return *o.UpdatedAt
	}

	return o.CreatedAt
}

// Total сумма, которую видит покупатель.
func (o Offer) Total() value.Amount {
	return o.OfferedAmount.Add(o.Fee)
}

func (o Offer) IsRequested() bool {
	return o.Status == value.OfferStatusRequested
}

// RoleOf определяет роль кошелька в предложении.
func (o Offer) RoleOf(wallet value.Address) value.Role {
	switch {
	case wallet.IsZero():
		return value.RoleObserver
	case wallet == o.SellerAddress:
		return value.RoleSeller
	case wallet == o.BuyerAddress:
		return value.RoleBuyer
	default:
		return value.RoleObserver
	}
}

// OfferUpdate is a conditional status change: it applies only while the stored
// status still equals ExpectedStatus.
type OfferUpdate struct {
	ExpectedStatus value.OfferStatus
	Status         value.OfferStatus
	UpdatedAt      time.Time
}

type OfferEventType string

const (
	OfferEventRequested OfferEventType = "offer.requested"
	OfferEventAccepted  OfferEventType = "offer.accepted"
	OfferEventCanceled  OfferEventType = "offer.canceled"
)

// OfferEvent уходит в шину после каждого изменения записи.
type OfferEvent struct {
	Type       OfferEventType
	Offer      Offer
	OccurredAt time.Time
}

func EventTypeForStatus(status value.OfferStatus) OfferEventType {
	switch status {
	case value.OfferStatusAccepted:
		return OfferEventAccepted
	case value.OfferStatusCanceled:
		return OfferEventCanceled
	default:
		return OfferEventRequested
	}
}
