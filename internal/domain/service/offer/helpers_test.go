package offer_test

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/btcsuite/btcutil/base58"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/service/escrow"
	"nft_escrow/internal/domain/service/offer"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/errcodes"
)

func address(b byte) value.Address {
	return value.Address(base58.Encode(bytes.Repeat([]byte{b}, 32)))
}

//nolint:gochecknoglobals
var (
	seller   = address(1)
	buyer    = address(2)
	nft      = address(3)
	escrowAt = address(4)
	stranger = address(5)

	t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func wallet(owner value.Address) *escrow.SignerMock {
	return &escrow.SignerMock{
		PublicKeyFunc: func(context.Context) (value.Address, bool) {
			return owner, !owner.IsZero()
		},
	}
}

func requested(id string, createdAt time.Time) entity.Offer {
	return entity.Offer{
		ID:            id,
		NFTAddress:    nft,
		SellerAddress: seller,
		BuyerAddress:  buyer,
		EscrowAddress: escrowAt,
		OfferedAmount: value.MustParseAmount("2.5"),
		Fee:           value.MustParseAmount("0.05"),
		Status:        value.OfferStatusRequested,
		CreatedAt:     createdAt,
	}
}

type memStore struct {
	mu     sync.Mutex
	offers map[string]entity.Offer
}

func (m *memStore) get(id string) entity.Offer {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.offers[id]
}

func (m *memStore) filter(keep func(entity.Offer) bool) []entity.Offer {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []entity.Offer
	for _, o := range m.offers {
		if keep(o) {
			out = append(out, o)
		}
	}

	return out
}

// newRepo репозиторий в памяти с теми же гарантиями, что и postgres:
// уникальность REQUESTED на пару и compare-and-set в Update.
func newRepo(seed ...entity.Offer) (*offer.RepositoryMock, *memStore) {
	store := &memStore{offers: make(map[string]entity.Offer)}
	for _, o := range seed {
		store.offers[o.ID] = o
	}

	repo := &offer.RepositoryMock{
		CreateFunc: func(_ context.Context, o entity.Offer) (entity.Offer, error) {
			store.mu.Lock()
			defer store.mu.Unlock()

			if _, ok := store.offers[o.ID]; ok {
				return entity.Offer{}, domain.NewError(errcodes.OfferRecorded, "offer already recorded")
			}

			for _, existing := range store.offers {
				if existing.NFTAddress == o.NFTAddress && existing.SellerAddress == o.SellerAddress &&
					existing.IsRequested() {
					return entity.Offer{}, domain.NewError(errcodes.OfferAlreadyActive, "active offer exists")
				}
			}

			store.offers[o.ID] = o

			return o, nil
		},
		GetByIDFunc: func(_ context.Context, id string) (entity.Offer, error) {
			store.mu.Lock()
			defer store.mu.Unlock()

			o, ok := store.offers[id]
			if !ok {
				return entity.Offer{}, domain.NewError(errcodes.OfferNotFound, "offer not found")
			}

			return o, nil
		},
		QueryByAssetFunc: func(_ context.Context, asset value.Address) ([]entity.Offer, error) {
			return store.filter(func(o entity.Offer) bool { return o.NFTAddress == asset }), nil
		},
		ListBySellerFunc: func(_ context.Context, s value.Address) ([]entity.Offer, error) {
			return store.filter(func(o entity.Offer) bool { return o.SellerAddress == s }), nil
		},
		ListByBuyerFunc: func(_ context.Context, b value.Address) ([]entity.Offer, error) {
			return store.filter(func(o entity.Offer) bool { return o.BuyerAddress == b }), nil
		},
		ListRequestedFunc: func(_ context.Context, afterID string, limit int) ([]entity.Offer, error) {
			out := store.filter(func(o entity.Offer) bool { return o.IsRequested() && o.ID > afterID })
			slices.SortFunc(out, func(a, b entity.Offer) int { return strings.Compare(a.ID, b.ID) })

			if len(out) > limit {
				out = out[:limit]
			}

			return out, nil
		},
		UpdateFunc: func(_ context.Context, id string, update entity.OfferUpdate) (entity.Offer, error) {
			store.mu.Lock()
			defer store.mu.Unlock()

			o, ok := store.offers[id]
			if !ok {
				return entity.Offer{}, domain.NewError(errcodes.OfferNotFound, "offer not found")
			}

			if o.Status != update.ExpectedStatus {
				return entity.Offer{}, domain.NewError(errcodes.IllegalTransition, "status changed")
			}

			updatedAt := update.UpdatedAt
			o.Status = update.Status
			o.UpdatedAt = &updatedAt
			store.offers[id] = o

			return o, nil
		},
	}

	return repo, store
}

func openEscrowBuilder() *offer.EscrowBuilderMock {
	return &offer.EscrowBuilderMock{
		SubmitOfferCreationFunc: func(
			context.Context,
			escrow.Signer,
			escrow.OfferCreation,
		) (escrow.CreationReceipt, error) {
			return escrow.CreationReceipt{EscrowAddress: escrowAt, Receipt: entity.Receipt{Signature: "create"}}, nil
		},
		SubmitAcceptFunc: func(context.Context, escrow.Signer, value.Address) (entity.Receipt, error) {
			return entity.Receipt{Signature: "release"}, nil
		},
		SubmitCancelFunc: func(context.Context, escrow.Signer, value.Address) (entity.Receipt, error) {
			return entity.Receipt{Signature: "return"}, nil
		},
		EscrowStateFunc: func(_ context.Context, addr value.Address) (entity.EscrowAccount, error) {
			return entity.EscrowAccount{Address: addr, Exists: true}, nil
		},
	}
}

func codeOf(err error) string {
	code, _ := domain.GetCode(err)
	return code.String()
}
