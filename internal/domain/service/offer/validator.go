package offer

import (
	"context"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/service/escrow"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/errcodes"
)

// SubmitInput данные формы продавца как есть.
type SubmitInput struct {
	NFTAddress   string
	BuyerAddress string
	Amount       string
}

type ValidatedInput struct {
	Seller value.Address
	Buyer  value.Address
	NFT    value.Address
	Amount value.Amount
}

// ValidateInput проверки 1-3: кошелёк, сумма, адреса. Порядок важен: первая
// сработавшая проверка определяет код ошибки.
func ValidateInput(ctx context.Context, signer escrow.Signer, in SubmitInput) (ValidatedInput, error) {
	if signer == nil {
		return ValidatedInput{}, domain.NewError(errcodes.NotAuthenticated, "wallet is not connected properly")
	}

	seller, ok := signer.PublicKey(ctx)
	if !ok || seller.IsZero() {
		return ValidatedInput{}, domain.NewError(errcodes.NotAuthenticated, "wallet is not connected properly")
	}

	amount, err := value.ParseAmount(in.Amount)
	if err != nil {
		return ValidatedInput{}, domain.WrapError(err, errcodes.InvalidAmount, "amount is not a plain decimal number")
	}

	if !amount.HasAtMostOneDecimal() {
		return ValidatedInput{}, domain.NewError(errcodes.InvalidAmount, "amount must have at most one decimal digit")
	}

	if !amount.IsPositive() {
		return ValidatedInput{}, domain.NewError(errcodes.InvalidAmount, "amount must be greater than zero")
	}

	buyer, err := value.ParseAddress(in.BuyerAddress)
	if err != nil {
		return ValidatedInput{}, domain.WrapError(err, errcodes.InvalidAddress, "invalid buyer address")
	}

	if buyer == seller {
		return ValidatedInput{}, domain.NewError(errcodes.InvalidAddress, "buyer must differ from seller")
	}

	nft, err := value.ParseAddress(in.NFTAddress)
	if err != nil {
		return ValidatedInput{}, domain.WrapError(err, errcodes.InvalidAddress, "invalid nft address")
	}

	return ValidatedInput{
		Seller: seller,
		Buyer:  buyer,
		NFT:    nft,
		Amount: amount,
	}, nil
}

// CheckNoActiveOffer проверка 4 по снимку записей. Снимок может устареть,
// окончательно дубль отсекает уникальный индекс хранилища.
func CheckNoActiveOffer(records []entity.Offer, nft, seller value.Address) error {
	for _, r := range records {
		if r.NFTAddress == nft && r.SellerAddress == seller && r.IsRequested() {
			return domain.NewError(errcodes.OfferAlreadyActive, "an offer for this asset is already active")
		}
	}

	return nil
}
