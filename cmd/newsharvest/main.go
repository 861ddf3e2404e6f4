package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/ahocorasick"
	"github.com/jinhoo5694/newsharvest/crawl"
	"github.com/jinhoo5694/newsharvest/goquery"
	nhhttp "github.com/jinhoo5694/newsharvest/http"
	"github.com/jinhoo5694/newsharvest/htmltomarkdown"
	"github.com/jinhoo5694/newsharvest/readability"
	nhslog "github.com/jinhoo5694/newsharvest/slog"
	"github.com/jinhoo5694/newsharvest/sqlite"
	"github.com/jinhoo5694/newsharvest/trafilatura"
)

func main() {
	ctx := context.Background()

	// Load optional .env for NEWSHARVEST_DB and friends.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService newsharvest.ArticleService
	RunService     newsharvest.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsharvest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsharvest --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSHARVEST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService
	deps.Runs = m.RunService

	if cmd == "run" {
		deps.Crawler, err = buildCrawler(&cli.Run, stderr)
		if err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// buildCrawler wires the harvesting pipeline from the run command's flags.
func buildCrawler(c *RunCmd, stderr io.Writer) (*crawl.Crawler, error) {
	agg := newsharvest.DefaultAggregator()
	if c.BaseURL != "" {
		agg = newsharvest.Aggregator{BaseURL: c.BaseURL}
		agg.Name = agg.Host()
		if agg.Name == "" {
			return nil, fmt.Errorf("invalid base URL %q", c.BaseURL)
		}
	}

	var fallback newsharvest.Extractor
	switch c.Extractor {
	case "readability":
		fallback = readability.NewExtractor()
	default:
		fallback = trafilatura.NewExtractor()
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	var fetcher newsharvest.Fetcher = nhhttp.NewFetcher()
	if c.Verbose {
		fetcher = nhslog.NewLoggingFetcher(fetcher, logger)
	}

	return &crawl.Crawler{
		Aggregator:  agg,
		Fetcher:     fetcher,
		Listing:     goquery.NewListing(),
		Topics:      goquery.NewTopic(agg),
		Extractor:   goquery.NewExtractor(),
		Converter:   htmltomarkdown.NewConverter(),
		Classifier:  ahocorasick.NewClassifier(),
		Fallback:    fallback,
		Domains:     crawl.NewDomainLimiter(1.0),
		Logger:      logger,
		Pages:       c.Pages,
		MaxArticles: c.MaxArticles,
	}, nil
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSHARVEST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsharvest.db"
	}
	dir := filepath.Join(home, ".newsharvest")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsharvest.db")
}
