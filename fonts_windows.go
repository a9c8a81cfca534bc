//go:build windows

package invoicegen

// fontCandidates lists standard Windows font paths with Cyrillic coverage.
func fontCandidates() []FontHandle {
	return []FontHandle{
		{Path: `C:\Windows\Fonts\arial.ttf`, Family: "Arial"},
		{Path: `C:\Windows\Fonts\ARIAL.TTF`, Family: "Arial"},
	}
}
