package newsharvest

import (
	"fmt"
	"net/url"
	"strings"
)

// Aggregator identifies the upstream news-listing site being crawled.
// URLs on the aggregator's own host reference topic pages rather than
// original articles and require resolution before extraction.
type Aggregator struct {
	// BaseURL is the aggregator's index URL, e.g. "https://news.hada.io".
	BaseURL string

	// Name is the display name used as the article source when no
	// external source can be determined.
	Name string
}

// DefaultAggregator is the GeekNews aggregator.
func DefaultAggregator() Aggregator {
	return Aggregator{
		BaseURL: "https://news.hada.io",
		Name:    "GeekNews",
	}
}

// Host returns the aggregator's hostname with any leading "www." stripped.
func (a Aggregator) Host() string {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// ListingURL returns the URL of one index page. Pages are 1-based.
func (a Aggregator) ListingURL(page int) string {
	if page <= 1 {
		return a.BaseURL + "/"
	}
	return fmt.Sprintf("%s/?page=%d", a.BaseURL, page)
}

// TopicURL returns the detail page URL for an internal topic id.
func (a Aggregator) TopicURL(id string) string {
	return a.BaseURL + "/topic?id=" + id
}

// Owns returns true if rawURL points at the aggregator itself, either
// by host or because it is a relative aggregator-internal link.
func (a Aggregator) Owns(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !u.IsAbs() {
		return true
	}
	return strings.TrimPrefix(u.Hostname(), "www.") == a.Host()
}

// SourceName derives a display name for an article source from its URL
// hostname. The aggregator's own host maps to the aggregator's display
// name, meaning the article has no distinguishable external source.
func (a Aggregator) SourceName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return a.Name
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host == a.Host() {
		return a.Name
	}
	return host
}
