package main

import (
	"fmt"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	runID := c.RunID
	if runID == "" {
		runs, err := deps.Runs.FindRuns(deps.Ctx, newsharvest.RunFilter{Limit: 1})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
			return err
		}
		if len(runs) == 0 {
			err := newsharvest.Errorf(newsharvest.ENOTFOUND, "no runs to export")
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
			return err
		}
		runID = runs[0].ID
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, newsharvest.ArticleFilter{RunID: &runID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
		return err
	}

	if err := fs.NewWriter(c.Out).WriteArticles(deps.Ctx, articles); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", c.Out, newsharvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles from run %s to %s\n", len(articles), runID, c.Out)
	return nil
}
