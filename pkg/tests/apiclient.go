package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// WalletHeader заголовок, которым клиент представляется кошельком.
func WalletHeader(address string) http.Header {
	h := http.Header{}
	h.Set("X-Wallet-Address", address)

	return h
}

// APIClient ходит в поднятый httptest сервер и раскладывает ответ в dest
// (2xx) или errDest (остальное).
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(ctx context.Context, endpoint string, headers http.Header, dest, errDest any) (*http.Response, error) {
	return a.do(ctx, http.MethodGet, endpoint, headers, http.NoBody, dest, errDest)
}

func (a APIClient) Post(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	request any,
	dest, errDest any,
) (*http.Response, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.do(ctx, http.MethodPost, endpoint, headers, bytes.NewReader(b), dest, errDest)
}

// PostJSON отправляет тело как есть, для кейсов с битым JSON.
func (a APIClient) PostJSON(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	requestJSON string,
	dest, errDest any,
) (*http.Response, error) {
	return a.do(ctx, http.MethodPost, endpoint, headers, bytes.NewReader([]byte(requestJSON)), dest, errDest)
}

func (a APIClient) do(
	ctx context.Context,
	method string,
	endpoint string,
	headers http.Header,
	payload io.Reader,
	dest, errDest any,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	target := errDest
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		target = dest
	}

	if target == nil {
		return resp, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("json.Decode(%d): %w", resp.StatusCode, err)
	}

	return resp, nil
}
