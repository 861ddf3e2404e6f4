package newsharvest

// Converter converts HTML to readable markdown text.
type Converter interface {
	// Convert transforms HTML content into markdown with decoded
	// entities and normalized whitespace. The input should be clean
	// HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
