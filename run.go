package newsharvest

import (
	"context"
	"time"
)

// CrawlRun summarizes one crawl invocation. Runs are independent; there
// is no incremental crawling across runs.
type CrawlRun struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`
	Pages      int       `json:"pages"`
	Accepted   int       `json:"accepted"`
	Failed     int       `json:"failed"`
	Chars      int       `json:"chars"`
}

// RunService represents a service for managing crawl run records.
type RunService interface {
	// CreateRun records the start of a crawl run.
	CreateRun(ctx context.Context, run *CrawlRun) error

	// FinishRun records a run's final counters.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, run *CrawlRun) error

	// FindRuns retrieves runs, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*CrawlRun, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
