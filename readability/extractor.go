// Package readability provides an alternative boilerplate-removal
// fallback built on go-readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/jinhoo5694/newsharvest"
)

// Ensure Extractor implements newsharvest.Extractor at compile time.
var _ newsharvest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*newsharvest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &newsharvest.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
