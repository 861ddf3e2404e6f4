package mock

import (
	"context"

	"github.com/jinhoo5694/newsharvest"
)

var _ newsharvest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newsharvest.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
