package server

import (
	"context"
	"fmt"
	"net/http"

	"nft_escrow/internal/domain/service/escrow"
	"nft_escrow/internal/domain/service/fee"
	"nft_escrow/internal/domain/service/offer"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/httpx/reply"
	"nft_escrow/pkg/httpx/req"
	"nft_escrow/pkg/rest"
)

//go:generate moq -rm -out offer_service_mock.gen.go . offerService:offerServiceMock
type offerService interface {
	Submit(ctx context.Context, signer escrow.Signer, in offer.SubmitInput) (offer.SubmitResult, error)
	Accept(ctx context.Context, signer escrow.Signer, offerID string) (offer.TransitionResult, error)
	Cancel(ctx context.Context, signer escrow.Signer, offerID string) (offer.TransitionResult, error)
	Detail(ctx context.Context, nftRaw, sellerRaw string, viewer value.Address) (offer.DetailView, error)
	SellerTable(ctx context.Context, sellerRaw string) ([]offer.TableRow, error)
	BuyerTable(ctx context.Context, buyerRaw string) ([]offer.TableRow, error)
	Quote(amountRaw string) (fee.Quote, error)
}

// SignerFunc выдаёт подписанта для кошелька из заголовка запроса.
type SignerFunc func(wallet value.Address) escrow.Signer

type OfferServer struct {
	offerService offerService
	signerFor    SignerFunc
}

func NewOfferServer(offerService offerService, signerFor SignerFunc) OfferServer {
	return OfferServer{
		offerService: offerService,
		signerFor:    signerFor,
	}
}

func (s OfferServer) postV1Offers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateOfferRequest

	if err := req.Read(w, r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.offerService.Submit(ctx, s.signer(ctx), offer.SubmitInput{
		NFTAddress:   request.NFTAddress,
		BuyerAddress: request.BuyerAddress,
		Amount:       request.Amount,
	})
	if err != nil {
		return fmt.Errorf("offerService.Submit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTSubmitOffer(result))

	return nil
}

func (s OfferServer) postV1OfferAccept(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	result, err := s.offerService.Accept(ctx, s.signer(ctx), r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("offerService.Accept: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTransition(result))

	return nil
}

func (s OfferServer) postV1OfferCancel(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	result, err := s.offerService.Cancel(ctx, s.signer(ctx), r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("offerService.Cancel: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTransition(result))

	return nil
}

func (s OfferServer) getV1AssetSeller(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	nft, seller := r.PathValue("nft"), r.PathValue("seller")
	viewer, _ := walletFromContext(ctx)

	view, err := s.offerService.Detail(ctx, nft, seller, viewer)
	if err != nil {
		return fmt.Errorf("offerService.Detail: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDetail(nft, seller, view))

	return nil
}

func (s OfferServer) getV1SellerOffers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rows, err := s.offerService.SellerTable(ctx, r.PathValue("address"))
	if err != nil {
		return fmt.Errorf("offerService.SellerTable: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTable(value.RoleSeller, rows))

	return nil
}

func (s OfferServer) getV1BuyerOffers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rows, err := s.offerService.BuyerTable(ctx, r.PathValue("address"))
	if err != nil {
		return fmt.Errorf("offerService.BuyerTable: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTable(value.RoleBuyer, rows))

	return nil
}

func (s OfferServer) getV1FeeQuote(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	quote, err := s.offerService.Quote(r.URL.Query().Get("amount"))
	if err != nil {
		return fmt.Errorf("offerService.Quote: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTFeeQuote(quote))

	return nil
}

// signer nil для анонимного запроса, сервис ответит NotAuthenticated.
func (s OfferServer) signer(ctx context.Context) escrow.Signer {
	wallet, ok := walletFromContext(ctx)
	if !ok || s.signerFor == nil {
		return nil
	}

	return s.signerFor(wallet)
}

func walletFromContext(ctx context.Context) (value.Address, bool) {
	raw, err := contextx.WalletAddressFromContext(ctx)
	if err != nil {
		return "", false
	}

	wallet, err := value.ParseAddress(raw.String())
	if err != nil {
		logger(ctx).Warn("malformed wallet address header ignored")

		return "", false
	}

	return wallet, true
}
