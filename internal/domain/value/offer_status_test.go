package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nft_escrow/internal/domain/value"
)

func TestParseOfferStatus(t *testing.T) {
	rq := require.New(t)

	for _, s := range []string{"REQUESTED", "ACCEPTED", "CANCELED"} {
		status, err := value.ParseOfferStatus(s)
		rq.NoError(err)
		rq.Equal(s, status.String())
	}

	_, err := value.ParseOfferStatus("requested")
	rq.Error(err)

	rq.False(value.OfferStatusRequested.IsTerminal())
	rq.True(value.OfferStatusAccepted.IsTerminal())
	rq.True(value.OfferStatusCanceled.IsTerminal())
}

func TestEscrowResolutionImpliedStatus(t *testing.T) {
	rq := require.New(t)

	status, ok := value.EscrowReleased.ImpliedStatus()
	rq.True(ok)
	rq.Equal(value.OfferStatusAccepted, status)

	status, ok = value.EscrowReturned.ImpliedStatus()
	rq.True(ok)
	rq.Equal(value.OfferStatusCanceled, status)

	_, ok = value.EscrowUnresolved.ImpliedStatus()
	rq.False(ok)
}
