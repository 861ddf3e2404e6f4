// Package goquery provides DOM-based parsing of aggregator pages and
// heuristic main-content extraction from third-party article HTML.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jinhoo5694/newsharvest"
)

// Ensure Listing implements newsharvest.ListingParser at compile time.
var _ newsharvest.ListingParser = (*Listing)(nil)

// titlePrefixLen bounds the sanitized title prefix used to cross-reference
// topic links. Long enough to be distinctive, short enough to survive
// truncated link texts.
const titlePrefixLen = 20

var digitsRE = regexp.MustCompile(`[0-9]+`)

// Listing parses aggregator index pages into article references.
//
// The title anchor and the canonical topic-id link are not guaranteed to
// be the same DOM node on the aggregator's page, so topic ids are
// recovered in two passes: prefer a topic link elsewhere in the page
// whose text starts with a prefix of the row's title, fall back to a
// numeric id carried by the row's own anchor.
type Listing struct{}

// NewListing creates a new Listing parser.
func NewListing() *Listing {
	return &Listing{}
}

// topicRef is one "topic detail by id" link found in the page.
type topicRef struct {
	id   string
	text string
}

// ParseListing extracts article references from one index page.
// Results are neither deduplicated nor capped.
func (l *Listing) ParseListing(htmlStr string) ([]newsharvest.ListingEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "failed to parse listing HTML: %v", err)
	}

	// First pass: collect topic detail links for cross-referencing.
	var refs []topicRef
	doc.Find(`a[href*="topic?id="]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		id := topicIDFromURL(href)
		if id == "" {
			return
		}
		refs = append(refs, topicRef{id: id, text: normalizeText(sel.Text())})
	})

	// Second pass: article rows are anchors marked nofollow with the
	// title in a heading.
	var entries []newsharvest.ListingEntry
	doc.Find(`a[rel*="nofollow"][href]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}

		title := headingTitle(sel)
		if title == "" {
			return
		}

		topicID := crossReferenceTopicID(title, refs)
		if topicID == "" {
			topicID = rowTopicID(sel, href)
		}

		entries = append(entries, newsharvest.ListingEntry{
			Title:     title,
			SourceURL: href,
			TopicID:   topicID,
		})
	})

	return entries, nil
}

// headingTitle returns the row's title text: the nearest heading inside
// the anchor, or inside the anchor's row container when the heading is a
// sibling node.
func headingTitle(sel *goquery.Selection) string {
	if h := sel.Find("h1, h2, h3").First(); h.Length() > 0 {
		return strings.TrimSpace(h.Text())
	}
	if h := sel.Closest("div, li, tr").Find("h1, h2, h3").First(); h.Length() > 0 {
		return strings.TrimSpace(h.Text())
	}
	return strings.TrimSpace(sel.Text())
}

// crossReferenceTopicID matches a row title against topic detail links by
// sanitized prefix. Returns "" when no link text starts with the prefix.
func crossReferenceTopicID(title string, refs []topicRef) string {
	prefix := titlePrefix(title)
	if prefix == "" {
		return ""
	}
	for _, ref := range refs {
		if strings.HasPrefix(ref.text, prefix) {
			return ref.id
		}
	}
	return ""
}

// rowTopicID recovers a topic id from the row's own anchor: an explicit
// id attribute if present, otherwise any numeric id embedded in the link.
func rowTopicID(sel *goquery.Selection, href string) string {
	for _, attr := range []string{"data-topic-id", "topic_id", "topic-id"} {
		if v, ok := sel.Attr(attr); ok {
			if id := digitsRE.FindString(v); id != "" {
				return id
			}
		}
	}
	if id := topicIDFromURL(href); id != "" {
		return id
	}
	return digitsRE.FindString(href)
}

// topicIDFromURL extracts the numeric id from a topic detail URL.
func topicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	// Relative links like "topic?id=1" parse with Path "topic".
	if !strings.HasSuffix(u.Path, "topic") {
		return ""
	}
	id := u.Query().Get("id")
	if id == "" || digitsRE.FindString(id) != id {
		return ""
	}
	return id
}

// titlePrefix sanitizes a title for cross-referencing: lowercase,
// collapsed whitespace, truncated to titlePrefixLen runes.
func titlePrefix(title string) string {
	t := normalizeText(title)
	r := []rune(t)
	if len(r) > titlePrefixLen {
		r = r[:titlePrefixLen]
	}
	return strings.TrimSpace(string(r))
}

func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
