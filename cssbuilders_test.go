package invoicegen

// Notes:
// - fontFileURL: path normalization for font file URLs
// - buildFontFaceCSS: @font-face generation with and without a handle
// - buildDefaultStylesheet / buildFontOverrideStyle: structure checks

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFontFileURL - Path Normalization
// ---------------------------------------------------------------------------

func TestFontFileURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "unix path",
			path:     "/usr/share/fonts/DejaVuSans.ttf",
			expected: "file:///usr/share/fonts/DejaVuSans.ttf",
		},
		{
			name:     "windows backslash path with drive letter",
			path:     `C:\Windows\Fonts\arial.ttf`,
			expected: "file:///C/Windows/Fonts/arial.ttf",
		},
		{
			name:     "windows forward slash path with drive letter",
			path:     "D:/Fonts/arial.ttf",
			expected: "file:///D/Fonts/arial.ttf",
		},
		{
			name:     "lowercase drive letter",
			path:     `c:\fonts\a.ttf`,
			expected: "file:///c/fonts/a.ttf",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fontFileURL(tt.path)
			if got != tt.expected {
				t.Errorf("fontFileURL(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildFontFaceCSS
// ---------------------------------------------------------------------------

func TestBuildFontFaceCSS(t *testing.T) {
	t.Parallel()

	t.Run("nil handle yields no rules", func(t *testing.T) {
		t.Parallel()

		if got := buildFontFaceCSS(nil); got != "" {
			t.Errorf("buildFontFaceCSS(nil) = %q, want empty", got)
		}
	})

	t.Run("handle produces both family declarations", func(t *testing.T) {
		t.Parallel()

		got := buildFontFaceCSS(&FontHandle{Path: "/fonts/arial.ttf", Family: "Arial"})
		for _, want := range []string{
			`font-family: "Arial"`,
			`font-family: "sans-serif"`,
			`url("file:///fonts/arial.ttf")`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("buildFontFaceCSS() missing %q in %q", want, got)
			}
		}
	})

	t.Run("empty family defaults to Arial", func(t *testing.T) {
		t.Parallel()

		got := buildFontFaceCSS(&FontHandle{Path: "/fonts/x.ttf"})
		if !strings.Contains(got, `font-family: "Arial"`) {
			t.Errorf("buildFontFaceCSS() = %q, want Arial default", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildStylesheets
// ---------------------------------------------------------------------------

func TestBuildDefaultStylesheet(t *testing.T) {
	t.Parallel()

	t.Run("with font", func(t *testing.T) {
		t.Parallel()

		got := buildDefaultStylesheet(&FontHandle{Path: "/fonts/arial.ttf", Family: "Arial"})
		for _, want := range []string{
			"size: A4",
			"margin: 2cm",
			"font-size: 12pt",
			"font-family: Arial, Helvetica, sans-serif !important",
			"@font-face",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("buildDefaultStylesheet() missing %q", want)
			}
		}
	})

	t.Run("without font falls back to generic families", func(t *testing.T) {
		t.Parallel()

		got := buildDefaultStylesheet(nil)
		if !strings.Contains(got, "font-family: Arial, sans-serif !important") {
			t.Errorf("buildDefaultStylesheet(nil) missing generic family stack: %q", got)
		}
		if strings.Contains(got, "@font-face") {
			t.Errorf("buildDefaultStylesheet(nil) should not declare @font-face: %q", got)
		}
	})
}

func TestBuildFontOverrideStyle(t *testing.T) {
	t.Parallel()

	got := buildFontOverrideStyle(&FontHandle{Path: "/fonts/arial.ttf", Family: "Arial"})
	if !strings.Contains(got, "* { font-family: Arial, Helvetica, sans-serif !important; }") {
		t.Errorf("buildFontOverrideStyle() missing universal override: %q", got)
	}
	if strings.Contains(got, "@page") {
		t.Errorf("buildFontOverrideStyle() must not carry layout rules: %q", got)
	}
}
