//go:build !windows && !darwin && !linux

package invoicegen

// fontCandidates has no known font locations on this platform.
func fontCandidates() []FontHandle {
	return nil
}
