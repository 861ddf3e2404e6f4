package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jinhoo5694/newsharvest"
)

// Ensure Topic implements newsharvest.TopicParser at compile time.
var _ newsharvest.TopicParser = (*Topic)(nil)

// sourceLinkSelectors locate the external source anchor on a topic
// detail page. The aggregator distinguishes it with a bold style marker.
const sourceLinkSelectors = `a.bold, a.ud, b > a, strong > a, a[style*="font-weight"]`

// Topic parses aggregator topic detail pages.
type Topic struct {
	aggregator newsharvest.Aggregator
}

// NewTopic creates a new Topic parser for the given aggregator.
func NewTopic(aggregator newsharvest.Aggregator) *Topic {
	return &Topic{aggregator: aggregator}
}

// ParseTopic extracts the canonical title and external source from a
// topic detail page. When no bold-styled anchor with an absolute href is
// found, the source falls back to the page's own URL: the article has no
// distinguishable external source and the aggregator page itself is the
// source.
func (t *Topic) ParseTopic(htmlStr string, pageURL string) (*newsharvest.TopicInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "failed to parse topic HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())

	sourceURL := pageURL
	doc.Find(sourceLinkSelectors).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return true
		}
		sourceURL = href
		return false
	})

	return &newsharvest.TopicInfo{
		Title:      title,
		SourceURL:  sourceURL,
		SourceName: t.aggregator.SourceName(sourceURL),
	}, nil
}
