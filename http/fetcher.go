// Package http provides the bounded HTTP implementation of
// newsharvest.Fetcher used for aggregator and third-party article pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/jinhoo5694/newsharvest"
)

// DefaultFetchTimeout is the default per-request timeout. Third-party
// article hosts can be slow; 30s keeps a stuck host from stalling the
// crawl indefinitely.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxRedirects is the default redirect-chain depth limit.
const DefaultMaxRedirects = 5

// DefaultUserAgent mimics a desktop browser. Some article hosts serve
// reduced or empty markup to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Ensure Fetcher implements newsharvest.Fetcher at compile time.
var _ newsharvest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript; pages that render their content
// client-side are out of scope.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	maxRedirects int
	userAgent    string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxRedirects sets the redirect-chain depth limit.
// Defaults to DefaultMaxRedirects (5) if not specified.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		maxRedirects: DefaultMaxRedirects,
		userAgent:    DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// via holds the requests already made; its length equals
			// the number of redirect hops taken so far.
			if len(via) > f.maxRedirects {
				return newsharvest.Errorf(newsharvest.EUNAVAILABLE, "too many redirects")
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the decoded HTML content from the given URL.
// Redirects are followed up to the configured depth. The body is
// returned for any terminal status code, including 4xx/5xx; the caller
// decides whether it is usable.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newsharvest.Errorf(newsharvest.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	// The extractor operates on decoded text; compressed transfer
	// encodings are disabled rather than decompressed.
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := f.client.Do(req)
	if err != nil {
		// Network failures, timeouts, and exceeded redirect limits
		// all collapse to one fetch-failed kind; callers don't need
		// to distinguish them.
		return "", newsharvest.Errorf(newsharvest.EUNAVAILABLE, "fetch failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newsharvest.Errorf(newsharvest.EUNAVAILABLE, "fetch failed for %s: %v", url, err)
	}

	return string(body), nil
}
