package invoicegen

import (
	"fmt"
	"regexp"
	"strings"
)

// Font family stacks used depending on whether a Cyrillic-capable font was
// resolved at startup. With a registered font the concrete family comes
// first so the renderer prefers it over generic fallbacks.
const (
	fontFamilyWithHandle = "Arial, Helvetica, sans-serif"
	fontFamilyGeneric    = "Arial, sans-serif"
)

// driveLetterPattern matches a leading Windows drive letter in a
// slash-normalized path, e.g. "C:/Windows/Fonts/arial.ttf".
var driveLetterPattern = regexp.MustCompile(`^([A-Za-z]):/`)

// fontFileURL converts a font file path into a file:// URL usable inside
// @font-face. Backslashes are normalized and drive-letter paths are
// rewritten ("C:/..." becomes "/C/..."), which is the form the renderer
// resolves on Windows.
func fontFileURL(path string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	p = driveLetterPattern.ReplaceAllString(p, "/$1/")
	return "file://" + p
}

// fontFamilyFor returns the CSS font-family stack for the given handle.
func fontFamilyFor(font *FontHandle) string {
	if font != nil {
		return fontFamilyWithHandle
	}
	return fontFamilyGeneric
}

// buildFontFaceCSS generates @font-face rules pointing at the resolved
// font file. Both the concrete family name and the generic "sans-serif"
// alias are declared so existing stylesheets pick the font up either way.
// Returns "" when no font was resolved.
func buildFontFaceCSS(font *FontHandle) string {
	if font == nil || font.Path == "" {
		return ""
	}

	url := fontFileURL(font.Path)
	family := font.Family
	if family == "" {
		family = "Arial"
	}

	return fmt.Sprintf(`
@font-face {
  font-family: "%s";
  src: url("%s");
}
@font-face {
  font-family: "sans-serif";
  src: url("%s");
}
`, escapeCSSString(family), url, url)
}

// buildDefaultStylesheet generates the full fallback stylesheet injected
// when a template carries no <style> block at all: A4 page, 2cm margins,
// 12pt body text, and a forced font family on every element.
func buildDefaultStylesheet(font *FontHandle) string {
	return fmt.Sprintf(`<style>
%s@page {
  size: A4;
  margin: 2cm;
}
* {
  font-family: %s !important;
}
body {
  font-size: 12pt;
}
</style>`, buildFontFaceCSS(font), fontFamilyFor(font))
}

// buildFontOverrideStyle generates the minimal style block injected when a
// template already has its own stylesheet: @font-face rules plus a
// universal font-family override, leaving layout rules untouched.
func buildFontOverrideStyle(font *FontHandle) string {
	return fmt.Sprintf(`<style>%s* { font-family: %s !important; }</style>`,
		buildFontFaceCSS(font), fontFamilyFor(font))
}

// escapeCSSString escapes a string for safe use inside CSS quotes.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
