// Package htmltomarkdown converts extracted article HTML into readable
// markdown text for the publishing pipeline.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/jinhoo5694/newsharvest"
)

// Ensure Converter implements newsharvest.Converter at compile time.
var _ newsharvest.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert article HTML to markdown.
// Entity decoding (numeric and named references) happens during HTML
// parsing inside the conversion; the post-processing step normalizes
// whitespace for the output artifact.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", newsharvest.Errorf(newsharvest.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return normalize(result), nil
}

var blankRunRE = regexp.MustCompile(`\n{4,}`)
var hspaceRunRE = regexp.MustCompile(`[ \t]{2,}`)

// normalize applies the output whitespace policy: blank-line runs are
// capped at two (preserving paragraph separation), horizontal whitespace
// runs collapse to a single space, and leading per-line whitespace is
// stripped. Fenced code blocks are left untouched so indentation inside
// code survives.
func normalize(markdown string) string {
	markdown = blankRunRE.ReplaceAllString(markdown, "\n\n\n")

	lines := strings.Split(markdown, "\n")
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			lines[i] = strings.TrimSpace(line)
			continue
		}
		if inFence {
			continue
		}
		line = strings.TrimLeft(line, " \t")
		line = hspaceRunRE.ReplaceAllString(line, " ")
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
