// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/avdeyev/go-invoicegen/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForLockedOutput returns hints for a pre-existing output file that could
// not be removed before rewriting.
func ForLockedOutput(path string) string {
	return formatHints([]string{
		"close " + filepath.Base(path) + " if it is open in a PDF viewer or editor",
		"check write permissions on the output directory",
		"antivirus software may be holding a lock on the file",
	})
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	// Detect CI environment
	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	// Suggest ROD_NO_SANDBOX for container/CI environments
	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	// Suggest ROD_BROWSER_BIN if not set
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/invoicegen) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, filepath.Join(".config", "invoicegen")) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForEmptyDataDir returns a hint for a data directory with no usable files.
func ForEmptyDataDir(dir string) string {
	return format("add CSV or JSON files to " + dir)
}

// ForEmptyTemplatesDir returns a hint for a templates directory with no
// usable files.
func ForEmptyTemplatesDir(dir string) string {
	return format("add HTML (or Markdown) templates to " + dir)
}

// ForMissingIdentifiers returns a hint for data with no identifier fields.
func ForMissingIdentifiers() string {
	return format(`records need an "invoice_id", "invoiceId", "invoice", "id" or "ID" field`)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
