package metadata_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/infrastructure/metadata"
	"nft_escrow/pkg/errcodes"
)

func TestClientFetch(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)

		if r.URL.Path != "/v1/assets/Ape1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_, _ = io.WriteString(w, `{"name":"Ape #1","symbol":"APE","mediaUri":"ipfs://ape1"}`)
	}))
	defer server.Close()

	client := metadata.NewClient(metadata.Config{URL: server.URL, CacheTTL: time.Minute, Timeout: time.Second})

	meta, err := client.Fetch(ctx, "Ape1")
	rq.NoError(err)
	rq.Equal("Ape #1", meta.Name)
	rq.Equal("APE", meta.Symbol)
	rq.Equal("ipfs://ape1", meta.MediaURI)

	_, err = client.Fetch(ctx, "Ape1")
	rq.NoError(err)
	rq.Equal(int32(1), hits.Load())

	_, err = client.Fetch(ctx, "Missing")
	rq.True(domain.HasCode(err, errcodes.AssetNotFound))
}
