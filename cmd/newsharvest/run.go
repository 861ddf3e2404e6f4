package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/crawl"
	"github.com/jinhoo5694/newsharvest/fs"
	nhslog "github.com/jinhoo5694/newsharvest/slog"
)

// previewLen is how much of the first article's content the run summary shows.
const previewLen = 300

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	run := &newsharvest.CrawlRun{Pages: c.Pages}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s: crawling %d pages\n", run.ID, c.Pages)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressPage:
			fmt.Fprintf(deps.Stdout, "  page %d: %d entries\n", event.Page, event.Total)
		case crawl.ProgressAccepted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s  %s  %s\n",
				event.Completed, event.Total, event.Category, event.Title, crawl.TruncateURL(event.URL, 50))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %q: %s\n",
				event.Completed, event.Total, event.Title, newsharvest.ErrorMessage(event.Error))
		case crawl.ProgressFinished:
			// Summary printed after the crawl completes
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	for _, article := range result.Articles {
		article.RunID = run.ID
		if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
			fmt.Fprintf(deps.Stderr, "error storing %q: %s\n", article.Title, newsharvest.ErrorMessage(err))
			return err
		}
	}

	run.Accepted = result.Accepted
	run.Failed = result.Failed
	run.Chars = result.Chars
	run.FinishedAt = time.Now().UTC()
	if err := deps.Runs.FinishRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
		return err
	}

	var writer newsharvest.ArticleWriter = fs.NewWriter(c.Out)
	if c.Verbose {
		writer = nhslog.NewLoggingArticleWriter(writer, slog.New(slog.NewTextHandler(deps.Stderr, nil)))
	}
	if err := writer.WriteArticles(deps.Ctx, result.Articles); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", c.Out, newsharvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Accepted %d, failed %d (%s) -> %s\n",
		result.Accepted, result.Failed, crawl.FormatChars(result.Chars), c.Out)

	if len(result.Articles) > 0 {
		first := result.Articles[0]
		fmt.Fprintf(deps.Stdout, "\nFirst article: %s [%s]\n%s\n", first.Title, first.Category, preview(first.Content))
	}

	return nil
}

// preview returns the head of content for display.
func preview(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= previewLen {
		return content
	}
	return content[:previewLen] + "..."
}
