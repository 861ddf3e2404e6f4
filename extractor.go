package newsharvest

// ExtractResult holds the main content region recovered from an HTML page.
type ExtractResult struct {
	// Title is the page title, when one could be determined.
	Title string

	// ContentHTML is the main article region as HTML. Boilerplate
	// (scripts, navigation, footers, sidebars) has been removed.
	ContentHTML string
}

// Extractor locates the main article region in arbitrary third-party
// HTML. Extraction is best-effort: a result with little or no content
// is not an error, and the caller decides the minimum acceptable length.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
