package ledger_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/internal/infrastructure/ledger"
	"nft_escrow/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type rpcCall struct {
	Method string            `json:"method"`
	Params []jsoniter.RawMessage `json:"params"`
	ID     int64             `json:"id"`
}

func newNode(t *testing.T, handle func(call rpcCall) string) (*httptest.Server, *[]http.Header) {
	t.Helper()

	var headers []http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Clone())

		raw, _ := io.ReadAll(r.Body)

		var call rpcCall
		if err := json.Unmarshal(raw, &call); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, handle(call))
	}))
	t.Cleanup(server.Close)

	return server, &headers
}

func TestClientSendTransaction(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var params []map[string]any

	server, headers := newNode(t, func(call rpcCall) string {
		rq.Equal("sendTransaction", call.Method)
		var p map[string]any
		rq.NoError(json.Unmarshal(call.Params[0], &p))
		params = append(params, p)

		return `{"jsonrpc":"2.0","id":1,"result":{"signature":"5abc","slot":77}}`
	})

	client := ledger.NewClient(ledger.Config{URL: server.URL, AuthToken: "node-token", Timeout: time.Second})

	receipt, err := client.SendTransaction(ctx, entity.SignedTransaction{
		Transaction: entity.Transaction{
			FeePayer: "payer",
			Instructions: []entity.Instruction{
				{Kind: entity.InstructionReleaseEscrow, Escrow: "escrow", Recipient: "payer"},
			},
		},
		Signer:    "payer",
		Signature: "sig",
	})
	rq.NoError(err)
	rq.Equal("5abc", receipt.Signature)
	rq.Equal(uint64(77), receipt.Slot)

	rq.Len(params, 1)
	rq.Equal("sig", params[0]["signature"])
	rq.Equal("Bearer node-token", (*headers)[0].Get("Authorization"))
}

func TestClientGetEscrowAccount(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	server, _ := newNode(t, func(call rpcCall) string {
		rq.Equal("getEscrowAccount", call.Method)

		return `{"jsonrpc":"2.0","id":1,"result":{"exists":false,"resolution":"released"}}`
	})

	client := ledger.NewClient(ledger.Config{URL: server.URL, Timeout: time.Second})

	account, err := client.GetEscrowAccount(ctx, "escrow")
	rq.NoError(err)
	rq.Equal(value.Address("escrow"), account.Address)
	rq.False(account.Exists)
	rq.Equal(value.EscrowReleased, account.Resolution)
	rq.False(account.IsOpen())
}

func TestClientErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "RPC error keeps ledger text",
			status:  http.StatusOK,
			body:    `{"jsonrpc":"2.0","id":1,"error":{"code":-32002,"message":"escrow account already closed"}}`,
			message: "escrow account already closed",
		},
		{
			name:    "HTTP failure",
			status:  http.StatusServiceUnavailable,
			body:    `overloaded`,
			message: "status=503",
		},
		{
			name:    "Empty result",
			status:  http.StatusOK,
			body:    `{"jsonrpc":"2.0","id":1}`,
			message: "returned nothing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer server.Close()

			client := ledger.NewClient(ledger.Config{URL: server.URL, Timeout: time.Second})

			_, err := client.GetEscrowAccount(ctx, "escrow")
			rq.True(domain.HasCode(err, errcodes.LedgerError))
			rq.Contains(err.Error(), tc.message)
		})
	}
}

func TestClientRateLimit(t *testing.T) {
	rq := require.New(t)

	server, _ := newNode(t, func(rpcCall) string {
		return `{"jsonrpc":"2.0","id":1,"result":{"exists":true}}`
	})

	client := ledger.NewClient(ledger.Config{URL: server.URL, RequestsPerSecond: 0.001, Burst: 1, Timeout: time.Second})

	_, err := client.GetEscrowAccount(context.Background(), "escrow")
	rq.NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.GetEscrowAccount(ctx, "escrow")
	rq.True(domain.HasCode(err, errcodes.TimeoutExceeded))
}

func TestEncodeTransaction(t *testing.T) {
	rq := require.New(t)

	wire := ledger.EncodeTransaction(entity.Transaction{
		FeePayer: "seller",
		Nonce:    7,
		Instructions: []entity.Instruction{
			{
				Kind:   entity.InstructionFundEscrow,
				Escrow: "escrow",
				Amount: value.MustParseAmount("2.5"),
				Fee:    value.MustParseAmount("0.05"),
			},
			{Kind: entity.InstructionReturnEscrow, Escrow: "escrow", Recipient: "seller"},
		},
	})

	raw, err := json.Marshal(wire)
	rq.NoError(err)
	rq.JSONEq(`{
		"feePayer":"seller",
		"nonce":7,
		"instructions":[
			{"kind":"fund_escrow","escrow":"escrow","amount":"2.5","fee":"0.05"},
			{"kind":"return_escrow","escrow":"escrow","recipient":"seller"}
		]
	}`, string(raw))
}
