// Package config loads the optional YAML configuration for the CLI.
// Everything has a default reproducing the tool's fixed directory layout,
// so running without any config file is the normal case.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avdeyev/go-invoicegen/internal/hints"
	"github.com/avdeyev/go-invoicegen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidTimeout = errors.New("invalid render timeout")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxDirLength      = 4096 // Path components
	MaxLabelLength    = 20   // Currency label, e.g. "руб." or "EUR"
	MaxFontPathLength = 4096
	MaxTimeoutSeconds = 600
)

// Config holds all configuration for the invoice generator CLI.
type Config struct {
	Dirs   DirsConfig   `yaml:"dirs"`
	Font   FontConfig   `yaml:"font"`
	Render RenderConfig `yaml:"render"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// DirsConfig overrides the fixed directory layout.
type DirsConfig struct {
	Data      string `yaml:"data"`      // Input data files (default "data")
	Templates string `yaml:"templates"` // HTML/Markdown templates (default "templates")
	Output    string `yaml:"output"`    // Generated PDFs (default "output")
}

// FontConfig overrides font discovery.
type FontConfig struct {
	Path   string `yaml:"path"`   // Explicit font file path (empty = discover)
	Family string `yaml:"family"` // Family name for the explicit font
}

// RenderConfig tunes the rendering pipeline.
type RenderConfig struct {
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // PDF engine timeout (default 30)
	CurrencyLabel  string `yaml:"currencyLabel"`  // Suffix for derived amount rows (default "руб.")
}

// ViewerConfig controls post-generation behavior.
type ViewerConfig struct {
	OpenAfter bool `yaml:"openAfter"` // Open the PDF in the OS viewer (default true)
}

// DefaultConfig returns the configuration matching the tool's fixed layout.
func DefaultConfig() *Config {
	return &Config{
		Dirs:   DirsConfig{Data: "data", Templates: "templates", Output: "output"},
		Render: RenderConfig{TimeoutSeconds: 30, CurrencyLabel: "руб."},
		Viewer: ViewerConfig{OpenAfter: true},
	}
}

// Validate checks field lengths and value ranges.
func (c *Config) Validate() error {
	for _, dir := range []struct{ name, value string }{
		{"dirs.data", c.Dirs.Data},
		{"dirs.templates", c.Dirs.Templates},
		{"dirs.output", c.Dirs.Output},
	} {
		if err := validateFieldLength(dir.name, dir.value, MaxDirLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("font.path", c.Font.Path, MaxFontPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.currencyLabel", c.Render.CurrencyLabel, MaxLabelLength); err != nil {
		return err
	}
	if c.Render.TimeoutSeconds < 0 || c.Render.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("%w: %d seconds (must be between 0 and %d)",
			ErrInvalidTimeout, c.Render.TimeoutSeconds, MaxTimeoutSeconds)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Load returns the configuration to use for this run.
//
// With an explicit path the file must exist and parse; a missing file is an
// error. With an empty path the standard locations are searched (current
// directory, then the user config directory) and falling back to defaults
// when nothing is found is fine.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, candidate := range searchPaths() {
		if fileExists(candidate) {
			return loadFile(candidate)
		}
	}
	return DefaultConfig(), nil
}

// loadFile reads and parses a single config file, applying defaults for
// fields the file leaves unset.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s%s", ErrConfigNotFound, path, hints.ForConfigNotFound(searchPaths()))
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults restores defaults for fields an explicit config blanked.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if strings.TrimSpace(cfg.Dirs.Data) == "" {
		cfg.Dirs.Data = def.Dirs.Data
	}
	if strings.TrimSpace(cfg.Dirs.Templates) == "" {
		cfg.Dirs.Templates = def.Dirs.Templates
	}
	if strings.TrimSpace(cfg.Dirs.Output) == "" {
		cfg.Dirs.Output = def.Dirs.Output
	}
	if cfg.Render.TimeoutSeconds == 0 {
		cfg.Render.TimeoutSeconds = def.Render.TimeoutSeconds
	}
	if cfg.Render.CurrencyLabel == "" {
		cfg.Render.CurrencyLabel = def.Render.CurrencyLabel
	}
}

// searchPaths lists the default config locations in priority order.
func searchPaths() []string {
	paths := []string{"invoicegen.yaml", "invoicegen.yml"}
	if userDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(userDir, "invoicegen", "invoicegen.yaml"),
			filepath.Join(userDir, "invoicegen", "invoicegen.yml"),
		)
	}
	return paths
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
