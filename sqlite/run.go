package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinhoo5694/newsharvest"
)

// Compile-time interface verification.
var _ newsharvest.RunService = (*RunService)(nil)

// RunService implements newsharvest.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records the start of a crawl run.
func (s *RunService) CreateRun(ctx context.Context, run *newsharvest.CrawlRun) error {
	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawl_runs (id, started_at, pages)
		VALUES (?, ?, ?)
	`, run.ID, run.StartedAt.Format(time.RFC3339), run.Pages)

	return err
}

// FinishRun records a run's final counters.
func (s *RunService) FinishRun(ctx context.Context, run *newsharvest.CrawlRun) error {
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE crawl_runs
		SET finished_at = ?, accepted = ?, failed = ?, chars = ?
		WHERE id = ?
	`, run.FinishedAt.Format(time.RFC3339), run.Accepted, run.Failed, run.Chars, run.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return newsharvest.Errorf(newsharvest.ENOTFOUND, "run not found")
	}

	return nil
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter newsharvest.RunFilter) ([]*newsharvest.CrawlRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, started_at, finished_at, pages, accepted, failed, chars FROM crawl_runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY started_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*newsharvest.CrawlRun
	for rows.Next() {
		var run newsharvest.CrawlRun
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Pages, &run.Accepted, &run.Failed, &run.Chars); err != nil {
			return nil, err
		}

		run.StartedAt, err = parseRFC3339(startedAt, "started_at")
		if err != nil {
			return nil, err
		}
		if finishedAt != "" {
			run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at")
			if err != nil {
				return nil, err
			}
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
