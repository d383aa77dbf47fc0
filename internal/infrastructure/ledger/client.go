package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/httpx"
	"nft_escrow/pkg/logx"
)

const (
	methodSendTransaction  = "sendTransaction"
	methodGetEscrowAccount = "getEscrowAccount"

	maxErrorBody = 512
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Config struct {
	URL               string
	AuthToken         string
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
	LogFieldMaxLen    int
}

// Client JSON-RPC клиент узла леджера. Запросы ограничены по частоте.
type Client struct {
	url     string
	http    *http.Client
	limiter *rate.Limiter
	nextID  atomic.Int64
}

func NewClient(cfg Config) *Client {
	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
	)

	if cfg.AuthToken != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, httpx.StaticToken(cfg.AuthToken))
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		url: cfg.URL,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, max(cfg.Burst, 1)),
	}
}

func (c *Client) SendTransaction(ctx context.Context, tx entity.SignedTransaction) (entity.Receipt, error) {
	params := sendTransactionParams{
		Transaction: EncodeTransaction(tx.Transaction),
		Signer:      tx.Signer.String(),
		Signature:   tx.Signature,
	}

	var receipt receiptDTO
	if err := c.call(ctx, methodSendTransaction, []any{params}, &receipt); err != nil {
		return entity.Receipt{}, err
	}

	return entity.Receipt{Signature: receipt.Signature, Slot: receipt.Slot}, nil
}

// GetEscrowAccount для отсутствующего счёта узел отвечает exists=false, не ошибкой.
func (c *Client) GetEscrowAccount(ctx context.Context, address value.Address) (entity.EscrowAccount, error) {
	var account escrowAccountDTO

	params := map[string]string{"address": address.String()}
	if err := c.call(ctx, methodGetEscrowAccount, []any{params}, &account); err != nil {
		return entity.EscrowAccount{}, err
	}

	result := account.toDomain()
	if result.Address.IsZero() {
		result.Address = address
	}

	return result, nil
}

func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.WrapError(err, errcodes.TimeoutExceeded, "ledger request rate limit wait aborted")
	}

	id := c.nextID.Add(1)

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      id,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.WrapError(err, errcodes.LedgerError, "ledger node unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return domain.NewError(errcodes.LedgerError,
			fmt.Sprintf("ledger %s failed: status=%d body=%s", method, resp.StatusCode, raw))
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return domain.WrapError(err, errcodes.LedgerError, "malformed ledger response")
	}

	if rpcResp.Error != nil {
		logger(ctx).Warn("ledger rpc error",
			slog.String("method", method),
			slog.Int("code", rpcResp.Error.Code),
			slog.String("message", rpcResp.Error.Message),
		)

		return domain.WrapError(rpcResp.Error, errcodes.LedgerError, "ledger rejected "+method)
	}

	if out == nil {
		return nil
	}

	if len(rpcResp.Result) == 0 {
		return domain.WrapError(errors.New("empty result"), errcodes.LedgerError, "ledger "+method+" returned nothing")
	}

	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return domain.WrapError(err, errcodes.LedgerError, "malformed ledger result")
	}

	return nil
}
