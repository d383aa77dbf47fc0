package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/service/escrow"
	"nft_escrow/internal/domain/service/fee"
	"nft_escrow/internal/domain/service/offer"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/middlewarex"
	"nft_escrow/pkg/rest"
	"nft_escrow/pkg/tests"
)

type testSigner struct {
	wallet value.Address
}

func (s testSigner) PublicKey(context.Context) (value.Address, bool) {
	return s.wallet, true
}

func (s testSigner) SignTransaction(_ context.Context, tx entity.Transaction) (entity.SignedTransaction, error) {
	return entity.SignedTransaction{Transaction: tx, Signer: s.wallet}, nil
}

func newTestAPI(t *testing.T, svc offerService) tests.APIClient {
	t.Helper()

	r := chi.NewRouter()
	r.Use(middlewarex.TraceID, middlewarex.WalletAddress)

	signerFor := func(wallet value.Address) escrow.Signer { return testSigner{wallet: wallet} }
	NewServer(NewOfferServer(svc, signerFor)).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return tests.NewAPIClient(srv.URL, srv.Client())
}

func walletHeader(wallet value.Address) http.Header {
	return tests.WalletHeader(wallet.String())
}

func sampleOffer(seller, buyer value.Address) entity.Offer {
	return entity.Offer{
		ID:            "o1",
		NFTAddress:    value.AddressFromKey([32]byte{9}),
		SellerAddress: seller,
		BuyerAddress:  buyer,
		EscrowAddress: value.AddressFromKey([32]byte{7}),
		OfferedAmount: value.MustParseAmount("2.5"),
		Fee:           value.MustParseAmount("0.05"),
		Status:        value.OfferStatusRequested,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPostV1Offers(t *testing.T) {
	seller := value.AddressFromKey([32]byte{1})
	buyer := value.AddressFromKey([32]byte{2})

	cases := []struct {
		name       string
		headers    http.Header
		body       string
		submitErr  error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			headers:    walletHeader(seller),
			body:       `{"nftAddress":"nft","buyerAddress":"buyer","amount":"2.5"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "anonymous",
			headers:    http.Header{},
			body:       `{"nftAddress":"nft","buyerAddress":"buyer","amount":"2.5"}`,
			submitErr:  domain.NewError(errcodes.NotAuthenticated, "wallet is not connected properly"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   errcodes.NotAuthenticated.String(),
		},
		{
			name:       "amount missing",
			headers:    walletHeader(seller),
			body:       `{"nftAddress":"nft"}`,
			submitErr:  domain.NewError(errcodes.InvalidAmount, "amount is not a plain decimal number"),
			wantStatus: http.StatusBadRequest,
			wantCode:   errcodes.InvalidAmount.String(),
		},
		{
			name:       "anonymous empty form",
			headers:    http.Header{},
			body:       `{}`,
			submitErr:  domain.NewError(errcodes.NotAuthenticated, "wallet is not connected properly"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   errcodes.NotAuthenticated.String(),
		},
		{
			name:       "amount too long",
			headers:    walletHeader(seller),
			body:       `{"nftAddress":"nft","buyerAddress":"buyer","amount":"` + strings.Repeat("9", 40) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errcodes.ValidationError.String(),
		},
		{
			name:       "too many decimals",
			headers:    walletHeader(seller),
			body:       `{"nftAddress":"nft","buyerAddress":"buyer","amount":"2.55"}`,
			submitErr:  domain.NewError(errcodes.InvalidAmount, "amount must have at most one decimal place"),
			wantStatus: http.StatusBadRequest,
			wantCode:   errcodes.InvalidAmount.String(),
		},
		{
			name:       "active offer exists",
			headers:    walletHeader(seller),
			body:       `{"nftAddress":"nft","buyerAddress":"buyer","amount":"2.5"}`,
			submitErr:  domain.NewError(errcodes.OfferAlreadyActive, "active offer exists"),
			wantStatus: http.StatusConflict,
			wantCode:   errcodes.OfferAlreadyActive.String(),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			svc := &offerServiceMock{
				SubmitFunc: func(ctx context.Context, signer escrow.Signer, in offer.SubmitInput) (offer.SubmitResult, error) {
					if tt.submitErr != nil {
						return offer.SubmitResult{}, tt.submitErr
					}

					rq.NotNil(signer)
					wallet, _ := signer.PublicKey(ctx)
					rq.Equal(seller, wallet)
					rq.Equal("2.5", in.Amount)

					o := sampleOffer(seller, buyer)

					return offer.SubmitResult{
						Offer:   o,
						Fee:     o.Fee,
						Total:   o.Total(),
						Receipt: entity.Receipt{Signature: "sig"},
					}, nil
				},
			}

			api := newTestAPI(t, svc)

			var (
				resp    rest.SubmitOfferResponse
				errResp rest.Error
			)

			r, err := api.PostJSON(context.Background(), "/v1/offers", tt.headers, tt.body, &resp, &errResp)
			rq.NoError(err)
			rq.Equal(tt.wantStatus, r.StatusCode)

			if tt.wantCode != "" {
				rq.Equal(tt.wantCode, string(errResp.Code))
				return
			}

			rq.Equal("0.05", resp.Fee)
			rq.Equal("2.55", resp.Total)
			rq.Equal("sig", resp.ReceiptSignature)
			rq.Equal("REQUESTED", resp.Offer.Status)
		})
	}
}

func TestPostV1OfferAcceptCancel(t *testing.T) {
	rq := require.New(t)

	seller := value.AddressFromKey([32]byte{1})
	buyer := value.AddressFromKey([32]byte{2})

	svc := &offerServiceMock{
		AcceptFunc: func(_ context.Context, signer escrow.Signer, offerID string) (offer.TransitionResult, error) {
			rq.NotNil(signer)
			rq.Equal("o1", offerID)

			o := sampleOffer(seller, buyer)
			o.Status = value.OfferStatusAccepted

			return offer.TransitionResult{Offer: o, Receipt: entity.Receipt{Signature: "sig-accept"}}, nil
		},
		CancelFunc: func(context.Context, escrow.Signer, string) (offer.TransitionResult, error) {
			return offer.TransitionResult{}, domain.NewError(errcodes.IllegalTransition, "offer is already ACCEPTED")
		},
	}

	api := newTestAPI(t, svc)
	ctx := context.Background()

	var resp rest.TransitionResponse

	r, err := api.Post(ctx, "/v1/offers/o1/accept", walletHeader(buyer), struct{}{}, &resp, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, r.StatusCode)
	rq.Equal("ACCEPTED", resp.Offer.Status)
	rq.Equal("sig-accept", resp.ReceiptSignature)

	var errResp rest.Error

	r, err = api.Post(ctx, "/v1/offers/o1/cancel", walletHeader(seller), struct{}{}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusConflict, r.StatusCode)
	rq.Equal(errcodes.IllegalTransition.String(), string(errResp.Code))
	rq.False(errResp.Retryable)
}

func TestGetV1AssetSeller(t *testing.T) {
	rq := require.New(t)

	seller := value.AddressFromKey([32]byte{1})
	buyer := value.AddressFromKey([32]byte{2})
	o := sampleOffer(seller, buyer)

	svc := &offerServiceMock{
		DetailFunc: func(_ context.Context, nftRaw, sellerRaw string, viewer value.Address) (offer.DetailView, error) {
			rq.Equal(o.NFTAddress.String(), nftRaw)
			rq.Equal(seller.String(), sellerRaw)
			rq.Equal(buyer, viewer)

			return offer.DetailView{
				Canonical:   &o,
				IsRequested: true,
				Verified:    true,
				ViewerRole:  value.RoleBuyer,
				Actions:     []offer.Action{offer.ActionAccept},
				Asset:       entity.AssetMetadata{Address: o.NFTAddress, Name: "Ape #1"},
			}, nil
		},
	}

	api := newTestAPI(t, svc)

	var resp rest.OfferDetail

	r, err := api.Get(context.Background(),
		"/v1/assets/"+o.NFTAddress.String()+"/sellers/"+seller.String(),
		walletHeader(buyer), &resp, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, r.StatusCode)
	rq.True(resp.IsRequested)
	rq.Equal("buyer", resp.ViewerRole)
	rq.Equal([]string{"accept"}, resp.Actions)
	rq.False(resp.EscrowMissing)
	rq.NotNil(resp.Offer)
	rq.Equal("o1", resp.Offer.ID)
	rq.NotNil(resp.Asset)
	rq.Equal("Ape #1", resp.Asset.Name)
}

func TestGetV1Tables(t *testing.T) {
	rq := require.New(t)

	seller := value.AddressFromKey([32]byte{1})
	buyer := value.AddressFromKey([32]byte{2})
	o := sampleOffer(seller, buyer)

	svc := &offerServiceMock{
		SellerTableFunc: func(_ context.Context, sellerRaw string) ([]offer.TableRow, error) {
			rq.Equal(seller.String(), sellerRaw)
			return []offer.TableRow{{Offer: o, Actions: []offer.Action{offer.ActionCancel}}}, nil
		},
		BuyerTableFunc: func(context.Context, string) ([]offer.TableRow, error) {
			return nil, domain.NewError(errcodes.InvalidAddress, "invalid buyer address")
		},
	}

	api := newTestAPI(t, svc)
	ctx := context.Background()

	var table rest.OfferTable

	r, err := api.Get(ctx, "/v1/sellers/"+seller.String()+"/offers", nil, &table, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, r.StatusCode)
	rq.Equal("seller", table.Role)
	rq.Len(table.Items, 1)
	rq.Equal([]string{"cancel"}, table.Items[0].Actions)
	rq.Equal("2.55", table.Items[0].Offer.Total)

	var errResp rest.Error

	r, err = api.Get(ctx, "/v1/buyers/bad/offers", nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, r.StatusCode)
	rq.Equal(errcodes.InvalidAddress.String(), string(errResp.Code))
}

func TestGetV1FeeQuote(t *testing.T) {
	rq := require.New(t)

	calc := fee.NewCalculator(fee.DefaultPercentage)

	svc := &offerServiceMock{
		QuoteFunc: func(amountRaw string) (fee.Quote, error) {
			amount, err := value.ParseAmount(amountRaw)
			if err != nil {
				return fee.Quote{}, domain.WrapError(err, errcodes.InvalidAmount, "invalid amount")
			}
			return calc.Quote(amount), nil
		},
	}

	api := newTestAPI(t, svc)

	var quote rest.FeeQuote

	r, err := api.Get(context.Background(), "/v1/fees/quote?amount=2.5", nil, &quote, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, r.StatusCode)
	rq.Equal("0.05", quote.Fee)
	rq.Equal("2.55", quote.Total)
	rq.Equal("0.02", quote.FeePercentage)

	var errResp rest.Error

	r, err = api.Get(context.Background(), "/v1/fees/quote?amount=1e9999999", nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, r.StatusCode)
	rq.Equal(errcodes.InvalidAmount.String(), string(errResp.Code))
}
