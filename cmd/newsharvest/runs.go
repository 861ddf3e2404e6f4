package main

import (
	"fmt"
	"time"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/crawl"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, newsharvest.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'newsharvest run' to start one.")
		return nil
	}

	for _, r := range runs {
		status := "running"
		if !r.FinishedAt.IsZero() {
			status = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  accepted %d  failed %d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), status, r.Accepted, r.Failed, crawl.FormatChars(r.Chars))
	}

	return nil
}
