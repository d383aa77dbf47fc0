package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
)

const offerColumns = `id, nft_address, seller_address, buyer_address, escrow_address,
	offered_amount, fee, status, created_at, updated_at`

// offerSchema строка таблицы offers.
type offerSchema struct {
	ID            string          `db:"id"`
	NFTAddress    string          `db:"nft_address"`
	SellerAddress string          `db:"seller_address"`
	BuyerAddress  string          `db:"buyer_address"`
	EscrowAddress string          `db:"escrow_address"`
	OfferedAmount decimal.Decimal `db:"offered_amount"`
	Fee           decimal.Decimal `db:"fee"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     sql.NullTime    `db:"updated_at"`
}

func fromOffer(o entity.Offer) offerSchema {
	s := offerSchema{
		ID:            o.ID,
		NFTAddress:    o.NFTAddress.String(),
		SellerAddress: o.SellerAddress.String(),
		BuyerAddress:  o.BuyerAddress.String(),
		EscrowAddress: o.EscrowAddress.String(),
		OfferedAmount: o.OfferedAmount.Decimal(),
		Fee:           o.Fee.Decimal(),
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt,
	}

	if o.UpdatedAt != nil {
		s.UpdatedAt = sql.NullTime{Time: *o.UpdatedAt, Valid: true}
	}

	return s
}

func (s offerSchema) toDomain() (entity.Offer, error) {
	status, err := value.ParseOfferStatus(s.Status)
	if err != nil {
		return entity.Offer{}, fmt.Errorf("offer %s: %w", s.ID, err)
	}

	o := entity.Offer{
		ID:            s.ID,
		NFTAddress:    value.Address(s.NFTAddress),
		SellerAddress: value.Address(s.SellerAddress),
		BuyerAddress:  value.Address(s.BuyerAddress),
		EscrowAddress: value.Address(s.EscrowAddress),
		OfferedAmount: value.NewAmount(s.OfferedAmount),
		Fee:           value.NewAmount(s.Fee),
		Status:        status,
		CreatedAt:     s.CreatedAt.UTC(),
	}

	if s.UpdatedAt.Valid {
		updatedAt := s.UpdatedAt.Time.UTC()
		o.UpdatedAt = &updatedAt
	}

	return o, nil
}

func toOffers(schemas []offerSchema) ([]entity.Offer, error) {
	offers := make([]entity.Offer, 0, len(schemas))

	for _, s := range schemas {
		o, err := s.toDomain()
		if err != nil {
			return nil, err
		}

		offers = append(offers, o)
	}

	return offers, nil
}
