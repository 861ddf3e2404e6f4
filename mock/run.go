package mock

import (
	"context"

	"github.com/jinhoo5694/newsharvest"
)

var _ newsharvest.RunService = (*RunService)(nil)

// RunService is a mock implementation of newsharvest.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *newsharvest.CrawlRun) error
	FinishRunFn func(ctx context.Context, run *newsharvest.CrawlRun) error
	FindRunsFn  func(ctx context.Context, filter newsharvest.RunFilter) ([]*newsharvest.CrawlRun, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *newsharvest.CrawlRun) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FinishRun(ctx context.Context, run *newsharvest.CrawlRun) error {
	return s.FinishRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter newsharvest.RunFilter) ([]*newsharvest.CrawlRun, error) {
	return s.FindRunsFn(ctx, filter)
}
