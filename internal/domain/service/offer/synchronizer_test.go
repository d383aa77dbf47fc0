package offer_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/service/offer"
	"nft_escrow/internal/domain/value"
)

func TestSelectCanonical(t *testing.T) {
	rq := require.New(t)

	t1, t2, t3 := t0, t0.Add(time.Minute), t0.Add(2*time.Minute)

	older := requested("older", t1)
	newer := requested("newer", t2)

	updatedLater := requested("updated", t1)
	updatedLater.Status = value.OfferStatusCanceled
	updatedLater.UpdatedAt = &t3

	foreign := requested("foreign", t3.Add(time.Hour))
	foreign.SellerAddress = stranger

	testCases := []struct {
		name    string
		records []entity.Offer
		want    string
		found   bool
	}{
		{name: "Empty", records: nil},
		{name: "Only other sellers", records: []entity.Offer{foreign}},
		{name: "Newest createdAt wins", records: []entity.Offer{older, newer}, want: "newer", found: true},
		{name: "Order does not matter", records: []entity.Offer{newer, older}, want: "newer", found: true},
		{name: "UpdatedAt beats createdAt", records: []entity.Offer{older, newer, updatedLater}, want: "updated", found: true},
		{name: "Other sellers are ignored", records: []entity.Offer{older, foreign}, want: "older", found: true},
		{name: "Tie broken by id", records: []entity.Offer{requested("a", t1), requested("b", t1)}, want: "b", found: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, found := offer.SelectCanonical(tc.records, seller)
			rq.Equal(tc.found, found)
			rq.Equal(tc.want, got.ID)
		})
	}
}

func TestSelectCanonicalIsStable(t *testing.T) {
	rq := require.New(t)

	records := make([]entity.Offer, 0, 20)
	for i := range 20 {
		r := requested(string(rune('a'+i)), t0.Add(time.Duration(i%5)*time.Minute))
		records = append(records, r)
	}

	first, ok := offer.SelectCanonical(records, seller)
	rq.True(ok)

	for range 50 {
		rand.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })

		again, ok := offer.SelectCanonical(records, seller)
		rq.True(ok)
		rq.Equal(first.ID, again.ID)
	}
}

func TestSynchronizerReconcile(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	t.Run("Open escrow keeps offer active", func(*testing.T) {
		repo, _ := newRepo(requested("o1", t0))
		queue := &offer.RepairQueueMock{}

		got, err := offer.NewSynchronizer(repo, openEscrowBuilder(), queue).Reconcile(ctx, nft, seller)
		rq.NoError(err)
		rq.Equal("o1", got.Canonical.ID)
		rq.True(got.IsActive)
		rq.True(got.Verified)
		rq.False(got.Stale)
		rq.Empty(queue.EnqueueRepairCalls())
	})

	t.Run("Settled escrow is stale and queued", func(*testing.T) {
		repo, _ := newRepo(requested("o1", t0))
		builder := openEscrowBuilder()
		builder.EscrowStateFunc = func(_ context.Context, addr value.Address) (entity.EscrowAccount, error) {
			return entity.EscrowAccount{Address: addr, Resolution: value.EscrowReleased}, nil
		}
		queue := &offer.RepairQueueMock{
			EnqueueRepairFunc: func(context.Context, string) error { return nil },
		}

		got, err := offer.NewSynchronizer(repo, builder, queue).Reconcile(ctx, nft, seller)
		rq.NoError(err)
		rq.True(got.Stale)
		rq.False(got.IsActive)
		rq.False(got.EscrowMissing)
		rq.Equal(value.OfferStatusRequested, got.Canonical.Status)
		rq.Len(queue.EnqueueRepairCalls(), 1)
		rq.Equal("o1", queue.EnqueueRepairCalls()[0].OfferID)
		rq.Empty(repo.UpdateCalls())
	})

	t.Run("Ledger unavailable shows unverified record", func(*testing.T) {
		repo, _ := newRepo(requested("o1", t0))
		builder := openEscrowBuilder()
		builder.EscrowStateFunc = func(context.Context, value.Address) (entity.EscrowAccount, error) {
			return entity.EscrowAccount{}, errors.New("rpc timeout")
		}

		got, err := offer.NewSynchronizer(repo, builder, nil).Reconcile(ctx, nft, seller)
		rq.NoError(err)
		rq.True(got.IsActive)
		rq.False(got.Verified)
		rq.False(got.EscrowMissing)
	})

	t.Run("Terminal record skips the ledger", func(*testing.T) {
		done := requested("o1", t0)
		done.Status = value.OfferStatusAccepted

		repo, _ := newRepo(done)
		builder := openEscrowBuilder()

		got, err := offer.NewSynchronizer(repo, builder, nil).Reconcile(ctx, nft, seller)
		rq.NoError(err)
		rq.False(got.IsActive)
		rq.True(got.Verified)
		rq.Empty(builder.EscrowStateCalls())
	})

	t.Run("No records", func(*testing.T) {
		repo, _ := newRepo()

		got, err := offer.NewSynchronizer(repo, openEscrowBuilder(), nil).Reconcile(ctx, nft, seller)
		rq.NoError(err)
		rq.Nil(got.Canonical)
		rq.False(got.IsActive)
	})
}
