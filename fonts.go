package invoicegen

import "github.com/avdeyev/go-invoicegen/internal/fileutil"

// DiscoverFont searches the platform's standard font locations for a
// Cyrillic-capable font file and returns a handle to the first one found.
// Returns nil when nothing suitable exists; generation then falls back to
// generic font family names only.
//
// Discovery runs once at startup and the result is passed explicitly into
// the Service, so tests can substitute a fake or absent font.
func DiscoverFont() *FontHandle {
	for _, candidate := range fontCandidates() {
		if fileutil.FileExists(candidate.Path) {
			handle := candidate
			return &handle
		}
	}
	return nil
}
