//go:build darwin

package invoicegen

// fontCandidates lists standard macOS font paths with Cyrillic coverage.
func fontCandidates() []FontHandle {
	return []FontHandle{
		{Path: "/Library/Fonts/Arial.ttf", Family: "Arial"},
		{Path: "/System/Library/Fonts/Supplemental/Arial.ttf", Family: "Arial"},
	}
}
