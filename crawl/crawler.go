// Package crawl implements the end-to-end article harvesting pipeline:
// listing pagination, source resolution, content extraction,
// classification, and result accumulation.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/bloom"
	"golang.org/x/time/rate"
)

// Crawl defaults. The crawl is strictly sequential: one article at a
// time, fully processed before the next begins. The pacing intervals
// are the system's load-politeness guarantee toward the aggregator and
// arbitrary third-party hosts.
const (
	DefaultPages           = 5
	DefaultMaxArticles     = 100
	DefaultListingInterval = 300 * time.Millisecond
	DefaultArticleInterval = 500 * time.Millisecond
)

// Bloom filter sizing for seen-source-URL deduplication.
const (
	seenURLCapacity          = 10000
	seenURLFalsePositiveRate = 0.01
)

// skipHosts are domains known to block extraction or serve no
// extractable article body. Entries resolving to them are counted as
// failures without a fetch attempt.
var skipHosts = []string{
	"twitter.com",
	"x.com",
	"youtube.com",
	"youtu.be",
	"linkedin.com",
	"facebook.com",
	"instagram.com",
}

// ProgressType identifies a progress event during a crawl run.
type ProgressType int

// Progress event types emitted by Crawler.Run.
const (
	ProgressPage ProgressType = iota + 1
	ProgressAccepted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports per-article status during a crawl run.
type ProgressEvent struct {
	Type      ProgressType
	Page      int
	Title     string
	URL       string
	Category  newsharvest.Category
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called as the crawl advances. May be nil.
type ProgressFunc func(ProgressEvent)

// Result accumulates the outcome of one crawl run.
type Result struct {
	Articles []*newsharvest.Article
	Accepted int
	Failed   int
	Chars    int
}

// Crawler drives the harvesting pipeline. All fields except the
// optional ones must be set before calling Run.
type Crawler struct {
	Aggregator newsharvest.Aggregator
	Fetcher    newsharvest.Fetcher
	Listing    newsharvest.ListingParser
	Topics     newsharvest.TopicParser
	Extractor  newsharvest.Extractor
	Converter  newsharvest.Converter
	Classifier newsharvest.Classifier

	// Fallback is an optional boilerplate-removal engine consulted
	// when the structural extractor yields too little content.
	Fallback newsharvest.Extractor

	// Domains rate-limits third-party hosts. Optional.
	Domains newsharvest.DomainLimiter

	// Logger records per-page listing failures. Optional.
	Logger *slog.Logger

	Pages           int
	MaxArticles     int
	ListingInterval time.Duration
	ArticleInterval time.Duration
}

// Run executes one crawl: paginate the listing, deduplicate entries by
// title, cap the working set, then sequentially resolve, fetch,
// extract, and classify each entry. Individual article failures never
// abort the run; the only fatal errors are context cancellation and an
// invalid configuration.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	entries, err := c.collectEntries(ctx, logger, progress)
	if err != nil {
		return nil, err
	}

	maxArticles := c.MaxArticles
	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}
	// Entries beyond the cap are dropped, not processed.
	if len(entries) > maxArticles {
		entries = entries[:maxArticles]
	}

	articleInterval := c.ArticleInterval
	if articleInterval <= 0 {
		articleInterval = DefaultArticleInterval
	}
	pace := rate.NewLimiter(rate.Every(articleInterval), 1)

	result := &Result{}
	seenURLs := bloom.NewFilter(seenURLCapacity, seenURLFalsePositiveRate)

	for i, entry := range entries {
		if err := pace.Wait(ctx); err != nil {
			return nil, err
		}

		article, err := c.processEntry(ctx, entry, seenURLs)
		if err != nil {
			result.Failed++
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Title:     entry.Title,
				URL:       entry.SourceURL,
				Completed: i + 1,
				Total:     len(entries),
				Error:     err,
			})
			continue
		}

		result.Accepted++
		result.Chars += len(article.Content)
		result.Articles = append(result.Articles, article)
		progress(ProgressEvent{
			Type:      ProgressAccepted,
			Title:     article.Title,
			URL:       article.SourceURL,
			Category:  article.Category,
			Completed: i + 1,
			Total:     len(entries),
		})
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: len(entries), Total: len(entries)})
	return result, nil
}

// collectEntries paginates the listing and returns the deduplicated
// working set. Page failures are logged and tolerated; the run
// continues with whatever pages succeeded.
func (c *Crawler) collectEntries(ctx context.Context, logger *slog.Logger, progress ProgressFunc) ([]newsharvest.ListingEntry, error) {
	pages := c.Pages
	if pages <= 0 {
		pages = DefaultPages
	}
	listingInterval := c.ListingInterval
	if listingInterval <= 0 {
		listingInterval = DefaultListingInterval
	}
	pace := rate.NewLimiter(rate.Every(listingInterval), 1)

	var entries []newsharvest.ListingEntry
	seenTitles := make(map[string]bool)

	for page := 1; page <= pages; page++ {
		if err := pace.Wait(ctx); err != nil {
			return nil, err
		}

		pageURL := c.Aggregator.ListingURL(page)
		html, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			logger.Warn("listing page fetch failed", "page", page, "url", pageURL, "err", err)
			continue
		}

		parsed, err := c.Listing.ParseListing(html)
		if err != nil {
			logger.Warn("listing page parse failed", "page", page, "url", pageURL, "err", err)
			continue
		}

		// Deduplicate by title, first occurrence wins.
		for _, e := range parsed {
			if e.Title == "" || seenTitles[e.Title] {
				continue
			}
			seenTitles[e.Title] = true
			entries = append(entries, e)
		}

		progress(ProgressEvent{Type: ProgressPage, Page: page, Total: len(entries)})
	}

	return entries, nil
}

// processEntry resolves, fetches, extracts, and classifies one listing
// entry. Any returned error marks the entry as failed; the reasons are
// not retried within a run.
func (c *Crawler) processEntry(ctx context.Context, entry newsharvest.ListingEntry, seenURLs *bloom.Filter) (*newsharvest.Article, error) {
	sourceURL := entry.SourceURL
	sourceName := c.Aggregator.SourceName(sourceURL)

	// Aggregator-internal links reference topic pages, not articles.
	// Resolve them to the true external source; resolution failure
	// degrades gracefully and the entry keeps its original URL.
	if c.Aggregator.Owns(sourceURL) && entry.TopicID != "" {
		if info := c.resolveTopic(ctx, entry.TopicID); info != nil && info.SourceURL != "" {
			sourceURL = info.SourceURL
			sourceName = info.SourceName
		}
	}

	if c.Aggregator.Owns(sourceURL) {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "no external source for %q", entry.Title)
	}

	host := hostOf(sourceURL)
	if host == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "unparseable source URL %q", sourceURL)
	}
	if denylisted(host) {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "denylisted host %s", host)
	}

	if seenURLs.Test(sourceURL) {
		return nil, newsharvest.Errorf(newsharvest.ECONFLICT, "source %s already fetched", sourceURL)
	}
	seenURLs.Add(sourceURL)

	if c.Domains != nil {
		if err := c.Domains.Wait(ctx, host); err != nil {
			return nil, err
		}
	}

	html, err := c.Fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	content := c.extractContent(html)
	if len(content) < newsharvest.MinContentLen {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "content too short (%d chars)", len(content))
	}

	return &newsharvest.Article{
		Title:     entry.Title,
		Content:   content,
		Source:    sourceName,
		SourceURL: sourceURL,
		Category:  c.Classifier.Classify(entry.Title, content),
		Language:  newsharvest.LanguageEnglish,
	}, nil
}

// resolveTopic fetches and parses the aggregator topic page for id.
// Returns nil on any failure; the caller tolerates it.
func (c *Crawler) resolveTopic(ctx context.Context, id string) *newsharvest.TopicInfo {
	topicURL := c.Aggregator.TopicURL(id)
	html, err := c.Fetcher.Fetch(ctx, topicURL)
	if err != nil {
		return nil
	}
	info, err := c.Topics.ParseTopic(html, topicURL)
	if err != nil {
		return nil
	}
	return info
}

// extractContent runs the structural extractor and converts the result
// to markdown. When the yield is below the usable minimum, the fallback
// engine gets a chance before the entry is written off.
func (c *Crawler) extractContent(html string) string {
	content := c.extractWith(c.Extractor, html)
	if len(content) >= newsharvest.MinContentLen || c.Fallback == nil {
		return content
	}
	if fallback := c.extractWith(c.Fallback, html); len(fallback) > len(content) {
		return fallback
	}
	return content
}

func (c *Crawler) extractWith(extractor newsharvest.Extractor, html string) string {
	result, err := extractor.Extract(html)
	if err != nil || result.ContentHTML == "" {
		return ""
	}
	content, err := c.Converter.Convert(result.ContentHTML)
	if err != nil {
		return ""
	}
	return content
}

// hostOf returns the hostname of an absolute URL with any leading
// "www." stripped, or "" when the URL cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// denylisted reports whether host matches a skip domain exactly or as a
// subdomain.
func denylisted(host string) bool {
	for _, skip := range skipHosts {
		if host == skip || strings.HasSuffix(host, "."+skip) {
			return true
		}
	}
	return false
}
