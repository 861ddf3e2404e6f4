package newsharvest

import "context"

// Fetcher retrieves decoded HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body as text.
	// Bodies of non-2xx terminal responses are still returned; the
	// caller decides whether the body is usable. Network failures,
	// timeouts, and exceeded redirect limits all surface as
	// EUNAVAILABLE. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
