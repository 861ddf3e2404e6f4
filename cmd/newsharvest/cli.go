package main

import (
	"context"
	"io"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/crawl"
	"github.com/jinhoo5694/newsharvest/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Articles newsharvest.ArticleService
	Runs     newsharvest.RunService
	Crawler  *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run    RunCmd    `cmd:"" help:"Crawl the aggregator and harvest articles"`
	List   ListCmd   `cmd:"" help:"List stored articles"`
	Runs   RunsCmd   `cmd:"" help:"List past crawl runs"`
	Export ExportCmd `cmd:"" help:"Export a run's articles to a JSON file"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Pages       int    `short:"p" default:"5" help:"Listing pages to crawl"`
	MaxArticles int    `short:"n" default:"100" help:"Maximum articles per run"`
	Out         string `short:"o" default:"articles.json" help:"JSON output file path"`
	Extractor   string `enum:"trafilatura,readability" default:"trafilatura" help:"Fallback extraction engine"`
	BaseURL     string `name:"base-url" help:"Aggregator base URL override"`
	Verbose     bool   `short:"v" help:"Log every fetch"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	RunID    string `name:"run" help:"Filter by run ID"`
	Category string `help:"Filter by category"`
	Limit    int    `default:"20" help:"Maximum articles to show"`
	Full     bool   `help:"Show full article content"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `default:"20" help:"Maximum runs to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	RunID string `arg:"" name:"run" optional:"" help:"Run ID (defaults to the most recent run)"`
	Out string `short:"o" default:"articles.json" help:"JSON output file path"`
}
