package crawl

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatChars formats a character count in human-readable form.
func FormatChars(chars int) string {
	const (
		K = 1000
		M = K * 1000
	)
	switch {
	case chars >= M:
		return fmt.Sprintf("%.1fM chars", float64(chars)/float64(M))
	case chars >= K:
		return fmt.Sprintf("%.1fk chars", float64(chars)/float64(K))
	default:
		return fmt.Sprintf("%d chars", chars)
	}
}
