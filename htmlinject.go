package invoicegen

import "strings"

// hasStyleBlock reports whether the HTML already contains a <style> tag,
// case-insensitively.
func hasStyleBlock(htmlContent string) bool {
	return strings.Contains(strings.ToLower(htmlContent), "<style")
}

// injectStyleBlock inserts a style block into HTML content.
// Tries before </head> first, then after <body...>, then prepends.
// Anchor tags are matched case-insensitively.
func injectStyleBlock(htmlContent, styleBlock string) string {
	if styleBlock == "" {
		return htmlContent
	}

	if out, ok := injectAtAnchors(htmlContent, styleBlock); ok {
		return out
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// injectStyleBlockAtAnchor inserts a style block only when a </head> or
// <body> anchor exists, returning the content unchanged otherwise. Used for
// the font override path, which never prepends to anchor-less fragments.
func injectStyleBlockAtAnchor(htmlContent, styleBlock string) string {
	if styleBlock == "" {
		return htmlContent
	}

	if out, ok := injectAtAnchors(htmlContent, styleBlock); ok {
		return out
	}
	return htmlContent
}

// injectAtAnchors tries the </head> then <body...> anchor chain.
// Returns (content, false) when neither anchor is present.
func injectAtAnchors(htmlContent, styleBlock string) (string, bool) {
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:], true
	}

	// Try inserting after <body...>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:], true
		}
	}

	return htmlContent, false
}
