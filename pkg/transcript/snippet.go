// Package transcript provides parsing and excerpt utilities for podcast
// transcript files.
package transcript

import "strings"

const (
	// DefaultSnippetLength is the excerpt window size in characters
	DefaultSnippetLength = 500

	// fallbackOffset skips the introductory/advertising block that opens
	// many transcripts when no search term matches
	fallbackOffset = 2000

	// boundaryScan is how far into a clipped window we look for a newline
	// to start the snippet on a clean line
	boundaryScan = 100
)

// ExtractSnippet returns a bounded excerpt of content centered on the
// earliest case-insensitive occurrence of any search term. Terms are tried
// independently; the overall minimum index wins. When nothing matches, the
// excerpt starts at min(2000, len(content)). Clipped edges are padded with
// an ellipsis. Pure function: same inputs always yield the same output.
func ExtractSnippet(content string, terms []string, snippetLength int) string {
	if snippetLength <= 0 {
		snippetLength = DefaultSnippetLength
	}

	match := MatchPosition(content, terms)
	if match < 0 {
		start := fallbackOffset
		if start > len(content) {
			start = len(content)
		}
		end := start + snippetLength
		if end > len(content) {
			end = len(content)
		}
		return content[start:end] + "..."
	}

	start := match - snippetLength/2
	if start < 0 {
		start = 0
	}
	end := match + snippetLength/2
	if end > len(content) {
		end = len(content)
	}

	snippet := content[start:end]

	if start > 0 {
		// Drop the partial first line when a newline is close enough
		scan := boundaryScan
		if scan > len(snippet) {
			scan = len(snippet)
		}
		if nl := strings.Index(snippet[:scan], "\n"); nl >= 0 {
			snippet = snippet[nl+1:]
		}
	}

	snippet = strings.TrimSpace(snippet)

	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(content) {
		snippet = snippet + "..."
	}

	return snippet
}

// MatchPosition returns the minimum index at which any term occurs in
// content, lower-cased comparison, or -1 when no term matches
func MatchPosition(content string, terms []string) int {
	lower := strings.ToLower(content)

	match := -1
	for _, term := range terms {
		if term == "" {
			continue
		}
		idx := strings.Index(lower, strings.ToLower(term))
		if idx >= 0 && (match < 0 || idx < match) {
			match = idx
		}
	}

	return match
}
