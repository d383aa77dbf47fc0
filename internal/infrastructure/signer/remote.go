package signer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/internal/infrastructure/ledger"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/httpx"
	"nft_escrow/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	statusSigned   = "signed"
	statusRejected = "rejected"

	maxErrorBody = 512
)

type Config struct {
	URL            string
	AuthToken      string
	Timeout        time.Duration
	LogFieldMaxLen int
}

// Client сервис хранения ключей. Сам ключей не держит, только пересылает
// транзакцию владельцу кошелька на подпись.
type Client struct {
	baseURL string
	http    *http.Client
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

	return &Client{
		baseURL: cfg.URL,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// For подписант, привязанный к кошельку вызывающего. Пустой адрес даёт
// неподключённый кошелёк.
func (c *Client) For(wallet value.Address) *Remote {
	return &Remote{client: c, wallet: wallet}
}

type Remote struct {
	client *Client
	wallet value.Address
}

type signRequest struct {
	Transaction ledger.WireTransaction `json:"transaction"`
}

type signResponse struct {
	Status    string `json:"status"`
	Signature string `json:"signature"`
}

func (r *Remote) PublicKey(context.Context) (value.Address, bool) {
	return r.wallet, !r.wallet.IsZero()
}

func (r *Remote) SignTransaction(ctx context.Context, tx entity.Transaction) (entity.SignedTransaction, error) {
	if r.wallet.IsZero() {
		return entity.SignedTransaction{}, domain.NewError(errcodes.NotAuthenticated, "wallet is not connected")
	}

	body, err := json.Marshal(signRequest{Transaction: ledger.EncodeTransaction(tx)})
	if err != nil {
		return entity.SignedTransaction{}, fmt.Errorf("json.Marshal: %w", err)
	}

	endpoint := r.client.baseURL + "/v1/wallets/" + url.PathEscape(r.wallet.String()) + "/sign"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return entity.SignedTransaction{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.http.Do(req)
	if err != nil {
		return entity.SignedTransaction{}, fmt.Errorf("signer.SignTransaction: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusConflict:
		return entity.SignedTransaction{}, domain.ErrSignatureRejected
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return entity.SignedTransaction{}, domain.NewError(errcodes.NotAuthenticated,
			"wallet "+r.wallet.Short()+" is not available for signing")
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return entity.SignedTransaction{}, fmt.Errorf("signer.SignTransaction: status=%d body=%s", resp.StatusCode, raw)
	}

	var out signResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return entity.SignedTransaction{}, fmt.Errorf("json.Decode: %w", err)
	}

	if out.Status == statusRejected {
		return entity.SignedTransaction{}, domain.ErrSignatureRejected
	}

	if out.Status != statusSigned || out.Signature == "" {
		return entity.SignedTransaction{}, fmt.Errorf("signer.SignTransaction: unexpected status %q", out.Status)
	}

	return entity.SignedTransaction{
		Transaction: tx,
		Signer:      r.wallet,
		Signature:   out.Signature,
	}, nil
}
