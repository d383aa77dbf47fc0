package server

import (
	"github.com/samber/lo"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/service/fee"
	"nft_escrow/internal/domain/service/offer"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/rest"
)

func newRESTOffer(o entity.Offer) rest.Offer {
	return rest.Offer{
		ID:            o.ID,
		NFTAddress:    o.NFTAddress.String(),
		SellerAddress: o.SellerAddress.String(),
		BuyerAddress:  o.BuyerAddress.String(),
		EscrowAddress: o.EscrowAddress.String(),
		OfferedAmount: o.OfferedAmount.String(),
		Fee:           o.Fee.String(),
		Total:         o.Total().String(),
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func newRESTSubmitOffer(result offer.SubmitResult) rest.SubmitOfferResponse {
	return rest.SubmitOfferResponse{
		Offer:            newRESTOffer(result.Offer),
		Fee:              result.Fee.String(),
		Total:            result.Total.String(),
		ReceiptSignature: result.Receipt.Signature,
	}
}

func newRESTTransition(result offer.TransitionResult) rest.TransitionResponse {
	return rest.TransitionResponse{
		Offer:            newRESTOffer(result.Offer),
		ReceiptSignature: result.Receipt.Signature,
	}
}

func newRESTDetail(nft, seller string, view offer.DetailView) rest.OfferDetail {
	detail := rest.OfferDetail{
		NFTAddress:    nft,
		SellerAddress: seller,
		ViewerRole:    view.ViewerRole.String(),
		IsRequested:   view.IsRequested,
		Stale:         view.Stale,
		Verified:      view.Verified,
		EscrowMissing: view.EscrowMissing,
		Actions:       newRESTActions(view.Actions),
	}

	if view.Canonical != nil {
		o := newRESTOffer(*view.Canonical)
		detail.Offer = &o
	}

	if view.Asset.Name != "" || view.Asset.MediaURI != "" {
		detail.Asset = &rest.Asset{
			Name:     view.Asset.Name,
			Symbol:   view.Asset.Symbol,
			MediaURI: view.Asset.MediaURI,
		}
	}

	return detail
}

func newRESTTable(role value.Role, rows []offer.TableRow) rest.OfferTable {
	return rest.OfferTable{
		Role: role.String(),
		Items: lo.Map(rows, func(row offer.TableRow, _ int) rest.OfferRow {
			return rest.OfferRow{
				Offer:   newRESTOffer(row.Offer),
				Actions: newRESTActions(row.Actions),
			}
		}),
	}
}

func newRESTActions(actions []offer.Action) []string {
	return lo.Map(actions, func(a offer.Action, _ int) string { return string(a) })
}

func newRESTFeeQuote(q fee.Quote) rest.FeeQuote {
	return rest.FeeQuote{
		Amount:        q.Amount.String(),
		Fee:           q.Fee.String(),
		Total:         q.Total.String(),
		FeePercentage: q.Percentage.String(),
	}
}
