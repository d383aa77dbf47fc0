package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"

	"nft_escrow/internal/domain"
	"nft_escrow/internal/domain/entity"
	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/errcodes"
	"nft_escrow/pkg/httpx"
	"nft_escrow/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const cleanupFactor = 2

type Config struct {
	URL            string
	CacheTTL       time.Duration
	Timeout        time.Duration
	LogFieldMaxLen int
}

// Client источник метаданных актива с кэшем в памяти.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *cache.Cache
}

type assetDTO struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	MediaURI string `json:"mediaUri"`
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.URL,
		http: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
			),
			Timeout: cfg.Timeout,
		},
		cache: cache.New(cfg.CacheTTL, cleanupFactor*cfg.CacheTTL),
	}
}

func (c *Client) Fetch(ctx context.Context, asset value.Address) (entity.AssetMetadata, error) {
	if cached, ok := c.cache.Get(asset.String()); ok {
		if meta, ok := cached.(entity.AssetMetadata); ok {
			return meta, nil
		}
	}

	endpoint := c.baseURL + "/v1/assets/" + url.PathEscape(asset.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.AssetMetadata{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.AssetMetadata{}, fmt.Errorf("metadata.Fetch: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entity.AssetMetadata{}, domain.NewError(errcodes.AssetNotFound, "asset "+asset.Short()+" not found")
	default:
		return entity.AssetMetadata{}, fmt.Errorf("metadata.Fetch: status=%d", resp.StatusCode)
	}

	var dto assetDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return entity.AssetMetadata{}, fmt.Errorf("json.Decode: %w", err)
	}

	meta := entity.AssetMetadata{
		Address:  asset,
		Name:     dto.Name,
		Symbol:   dto.Symbol,
		MediaURI: dto.MediaURI,
	}

	c.cache.SetDefault(asset.String(), meta)

	return meta, nil
}
