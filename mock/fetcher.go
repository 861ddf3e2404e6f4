package mock

import (
	"context"

	"github.com/jinhoo5694/newsharvest"
)

var _ newsharvest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsharvest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
