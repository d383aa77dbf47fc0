package persistence_test

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/internal/infrastructure/persistence"
	"nft_escrow/pkg/dbtest"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/idgen"
)

func address(b byte) value.Address {
	return value.Address(base58.Encode(bytes.Repeat([]byte{b}, 32)))
}

func newRepo(t *testing.T) *persistence.OfferRepository {
	t.Helper()

	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN is not set")
	}

	rq := require.New(t)

	db, err := sqlx.Connect("pgx", dsn)
	rq.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	rq.NoError(dbtest.Reset(context.Background(), db, "migrations", "offers"))

	return persistence.NewOfferRepository(db)
}

func newOffer(id string, nft, seller value.Address) entity.Offer {
	return entity.Offer{
		ID:            id,
		NFTAddress:    nft,
		SellerAddress: seller,
		BuyerAddress:  address(2),
		EscrowAddress: address(4),
		OfferedAmount: value.MustParseAmount("2.5"),
		Fee:           value.MustParseAmount("0.05"),
		Status:        value.OfferStatusRequested,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestOfferRepositoryCreateAndGet(t *testing.T) {
	repo := newRepo(t)
	rq := require.New(t)
	ctx := context.Background()

	o := newOffer(uuid.NewString(), address(3), address(1))

	_, err := repo.Create(ctx, o)
	rq.NoError(err)

	got, err := repo.GetByID(ctx, o.ID)
	rq.NoError(err)
	rq.Equal(o.NFTAddress, got.NFTAddress)
	rq.True(o.Fee.Equal(got.Fee))
	rq.True(o.OfferedAmount.Equal(got.OfferedAmount))
	rq.Equal(value.OfferStatusRequested, got.Status)
	rq.Nil(got.UpdatedAt)

	_, err = repo.Create(ctx, o)
	rq.True(domain.HasCode(err, errcodes.OfferRecorded))

	_, err = repo.GetByID(ctx, uuid.NewString())
	rq.True(domain.HasCode(err, errcodes.OfferNotFound))
}

func TestOfferRepositoryOneRequestedPerSeller(t *testing.T) {
	repo := newRepo(t)
	rq := require.New(t)
	ctx := context.Background()

	nft, seller := address(3), address(1)

	const racers = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		rejected int
	)

	for range racers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := repo.Create(ctx, newOffer(uuid.NewString(), nft, seller))

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				created++
			case domain.HasCode(err, errcodes.OfferAlreadyActive):
				rejected++
			}
		}()
	}

	wg.Wait()

	rq.Equal(1, created)
	rq.Equal(racers-1, rejected)

	// другой продавец того же актива не конфликтует
	_, err := repo.Create(ctx, newOffer(uuid.NewString(), nft, address(9)))
	rq.NoError(err)

	records, err := repo.QueryByAsset(ctx, nft)
	rq.NoError(err)
	rq.Len(records, 2)
}

func TestOfferRepositoryUpdate(t *testing.T) {
	repo := newRepo(t)
	rq := require.New(t)
	ctx := context.Background()

	o := newOffer(uuid.NewString(), address(3), address(1))
	_, err := repo.Create(ctx, o)
	rq.NoError(err)

	at := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	updated, err := repo.Update(ctx, o.ID, entity.OfferUpdate{
		ExpectedStatus: value.OfferStatusRequested,
		Status:         value.OfferStatusAccepted,
		UpdatedAt:      at,
	})
	rq.NoError(err)
	rq.Equal(value.OfferStatusAccepted, updated.Status)
	rq.NotNil(updated.UpdatedAt)
	rq.True(at.Equal(*updated.UpdatedAt))
	rq.True(o.Fee.Equal(updated.Fee))

	_, err = repo.Update(ctx, o.ID, entity.OfferUpdate{
		ExpectedStatus: value.OfferStatusRequested,
		Status:         value.OfferStatusCanceled,
		UpdatedAt:      at,
	})
	rq.True(domain.HasCode(err, errcodes.IllegalTransition))

	_, err = repo.Update(ctx, uuid.NewString(), entity.OfferUpdate{
		ExpectedStatus: value.OfferStatusRequested,
		Status:         value.OfferStatusCanceled,
		UpdatedAt:      at,
	})
	rq.True(domain.HasCode(err, errcodes.OfferNotFound))

	// после закрытия продавец может выставить актив снова
	_, err = repo.Create(ctx, newOffer(uuid.NewString(), o.NFTAddress, o.SellerAddress))
	rq.NoError(err)
}

func TestOfferRepositoryListings(t *testing.T) {
	repo := newRepo(t)
	rq := require.New(t)
	ctx := context.Background()

	first := newOffer("a-"+uuid.NewString(), address(3), address(1))
	second := newOffer("b-"+uuid.NewString(), address(5), address(1))
	second.CreatedAt = first.CreatedAt.Add(time.Minute)

	for _, o := range []entity.Offer{first, second} {
		_, err := repo.Create(ctx, o)
		rq.NoError(err)
	}

	bySeller, err := repo.ListBySeller(ctx, address(1))
	rq.NoError(err)
	rq.Len(bySeller, 2)
	rq.Equal(second.ID, bySeller[0].ID)

	byBuyer, err := repo.ListByBuyer(ctx, address(2))
	rq.NoError(err)
	rq.Len(byBuyer, 2)

	page, err := repo.ListRequested(ctx, "", 1)
	rq.NoError(err)
	rq.Len(page, 1)
	rq.Equal(first.ID, page[0].ID)

	page, err = repo.ListRequested(ctx, page[0].ID, 10)
	rq.NoError(err)
	rq.Len(page, 1)
	rq.Equal(second.ID, page[0].ID)
}

func TestOfferRepositoryNewID(t *testing.T) {
	repo := newRepo(t)
	rq := require.New(t)
	ctx := context.Background()

	ids := idgen.NewFallback(repo, nil)

	id, err := ids.NewID(ctx)
	rq.NoError(err)

	_, err = uuid.Parse(id)
	rq.NoError(err)
}
