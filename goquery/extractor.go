package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jinhoo5694/newsharvest"
	"golang.org/x/net/html"
)

// Ensure Extractor implements newsharvest.Extractor at compile time.
var _ newsharvest.Extractor = (*Extractor)(nil)

// regionSelectors are candidate main-content regions in priority order:
// the semantic article element, common content-container class names,
// known container ids, then the semantic main element.
var regionSelectors = []string{
	"article",
	".markdown-body",
	".article-content",
	".post-content",
	".entry-content",
	".article-body",
	".post-body",
	"#content",
	"#article",
	"#main-content",
	"main",
}

// noiseSelectors are removed before region selection.
const noiseSelectors = "script, style, nav, footer, aside, noscript, iframe"

const (
	// minRegionLen accepts a region outright. Shorter matches are
	// usually navigational chrome, not article body.
	minRegionLen = 500

	// minCandidateLen is the floor for the best rejected candidate
	// before giving up and falling back to the full body.
	minCandidateLen = 300
)

// Extractor locates the main article region in third-party HTML using
// ranked structural selectors with a minimum-length acceptance policy.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract strips boilerplate from the document and returns the first
// region candidate of at least minRegionLen characters. If none
// qualifies, the longest candidate of at least minCandidateLen is used;
// failing that, the full body contents.
func (e *Extractor) Extract(rawHTML string) (*newsharvest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(noiseSelectors).Remove()
	removeComments(doc)

	var best string
	for _, sel := range regionSelectors {
		region, err := doc.Find(sel).First().Html()
		if err != nil {
			continue
		}
		if len(region) >= minRegionLen {
			return &newsharvest.ExtractResult{Title: title, ContentHTML: region}, nil
		}
		if len(region) > len(best) {
			best = region
		}
	}

	if len(best) >= minCandidateLen {
		return &newsharvest.ExtractResult{Title: title, ContentHTML: best}, nil
	}

	body, err := doc.Find("body").Html()
	if err != nil {
		return nil, newsharvest.Errorf(newsharvest.EINTERNAL, "failed to render body: %v", err)
	}
	return &newsharvest.ExtractResult{Title: title, ContentHTML: body}, nil
}

// removeComments strips HTML comment nodes from the document tree.
func removeComments(doc *goquery.Document) {
	for _, root := range doc.Nodes {
		stripCommentNodes(root)
	}
}

func stripCommentNodes(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
			continue
		}
		stripCommentNodes(c)
	}
}
