package main

import (
	"fmt"
	"strings"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/crawl"
)

// matchCategory resolves a user-supplied category name case-insensitively.
func matchCategory(name string) (newsharvest.Category, bool) {
	for _, c := range newsharvest.Categories() {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := newsharvest.ArticleFilter{Limit: c.Limit}
	if c.RunID != "" {
		filter.RunID = &c.RunID
	}
	if c.Category != "" {
		category, ok := matchCategory(c.Category)
		if !ok {
			err := newsharvest.Errorf(newsharvest.EINVALID, "unknown category %q", c.Category)
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
			return err
		}
		filter.Category = &category
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsharvest run' to harvest some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %s  %s\n", a.ID, a.Category, a.Title, crawl.TruncateURL(a.SourceURL, 50))
		if c.Full {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", a.Content)
		}
	}

	return nil
}
