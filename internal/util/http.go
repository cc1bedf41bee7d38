package util

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrFetch is returned for every failed fetch. Network errors, non-2xx
// statuses and undecodable bodies are not told apart.
var ErrFetch = errors.New("fetch failed")

// Fetcher issues single GET requests with no retry.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher. A zero timeout keeps the client default.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// NewFetcherWithClient wraps an existing client, e.g. one from httptest.
func NewFetcherWithClient(c *http.Client) *Fetcher {
	if c == nil {
		c = http.DefaultClient
	}
	return &Fetcher{client: c}
}

func (f *Fetcher) GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, f.fail(url, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.fail(url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, f.fail(url, fmt.Errorf("status %d", resp.StatusCode))
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, f.fail(url, err)
	}
	return b, nil
}

// GetJSON fetches url and decodes the body into v. Numbers are kept as
// json.Number when v holds interface values.
func (f *Fetcher) GetJSON(ctx context.Context, url string, v any) error {
	b, err := f.GetBytes(ctx, url)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return f.fail(url, err)
	}
	return nil
}

func (f *Fetcher) fail(url string, cause error) error {
	log.Debug().Err(cause).Str("url", url).Msg("fetch failed")
	return ErrFetch
}
