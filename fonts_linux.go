//go:build linux

package invoicegen

// fontCandidates lists common Linux font paths with Cyrillic coverage.
// DejaVu Sans ships with most distributions and covers the full Cyrillic
// range; Liberation Sans is metric-compatible with Arial.
func fontCandidates() []FontHandle {
	return []FontHandle{
		{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", Family: "DejaVu Sans"},
		{Path: "/usr/share/fonts/dejavu/DejaVuSans.ttf", Family: "DejaVu Sans"},
		{Path: "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf", Family: "Liberation Sans"},
	}
}
