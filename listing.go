package newsharvest

// ListingEntry is one article reference parsed from an aggregator index
// page. It exists only within one crawl run.
type ListingEntry struct {
	// Title is the article's display title on the index page.
	Title string

	// SourceURL is the entry's link target. It may be an
	// aggregator-internal topic link that still requires resolution.
	SourceURL string

	// TopicID is the aggregator's internal topic id, or "" when it
	// could not be recovered from the index page.
	TopicID string
}

// TopicInfo describes one aggregator topic detail page.
type TopicInfo struct {
	// Title is the canonical article title from the topic page.
	Title string

	// SourceURL is the external article URL, or the topic page's own
	// URL when the article has no distinguishable external source.
	SourceURL string

	// SourceName is the display name of the source site.
	SourceName string
}

// ListingParser extracts article references from an aggregator index page.
// It does not deduplicate or cap results; that is the crawler's job.
type ListingParser interface {
	ParseListing(html string) ([]ListingEntry, error)
}

// TopicParser extracts the canonical external source from a topic
// detail page. pageURL is the URL the page was fetched from and serves
// as the source fallback when no external link is found.
type TopicParser interface {
	ParseTopic(html string, pageURL string) (*TopicInfo, error)
}
