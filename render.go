package invoicegen

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// RenderResult is the outcome of placeholder substitution. Rendering never
// fails: a fault degrades to the original template text with Degraded set,
// so callers can distinguish success from fallback without relying on logs.
type RenderResult struct {
	Text          string   // Rendered text (or the raw template when degraded)
	Unresolved    []string // Placeholder names with no matching key (sorted)
	AvailableKeys []string // Keys that were available for substitution (sorted)
	Degraded      bool     // True when substitution fell back to the raw template
	Reason        error    // Cause of the degradation, nil otherwise
}

// Sentinel markers protecting literal {{ and }} from the single-brace
// substitution pass. NUL bytes cannot appear in well-formed template text.
const (
	openBraceSentinel  = "\x00OPEN\x00"
	closeBraceSentinel = "\x00CLOSE\x00"
)

// Derived fragment shapes for the optional tax and total summary rows.
const (
	taxRowFragment   = `<div class="amount-row"><span>НДС:</span><span>%s %s</span></div>`
	totalRowFragment = `<div class="amount-row total"><span>Итого:</span><span>%s %s</span></div>`
)

// styleBlockPattern matches <style>...</style> blocks, case-insensitively,
// across newlines. Used only by the diagnostic pass.
var styleBlockPattern = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)

// placeholderPattern matches {identifier}-shaped tokens left after
// substitution.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Render substitutes record fields into the template text using the
// default currency label for derived fragments.
func Render(tmpl string, rec Record) RenderResult {
	return renderWith(tmpl, rec, DefaultCurrencyLabel)
}

// renderWith is the substitution engine behind Render.
//
// The template is scanned in independent passes: literal double braces are
// first swapped for sentinel markers, then every known key is replaced in a
// single linear pass of its own ({key} or {key:format}), and finally the
// sentinels are restored. Substitution is purely textual; there is no
// fixed-point iteration and no recursive expansion.
func renderWith(tmpl string, rec Record, currencyLabel string) (result RenderResult) {
	// A fault in the engine must never abort the pipeline; degrade to the
	// unmodified template instead so PDF generation still has something to
	// work with.
	defer func() {
		if r := recover(); r != nil {
			result = RenderResult{
				Text:     tmpl,
				Degraded: true,
				Reason:   fmt.Errorf("rendering template: %v", r),
			}
		}
	}()

	values := buildValues(rec, currencyLabel)

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rendered := tmpl
	rendered = strings.ReplaceAll(rendered, "{{", openBraceSentinel)
	rendered = strings.ReplaceAll(rendered, "}}", closeBraceSentinel)

	for _, key := range keys {
		pattern := regexp.MustCompile(`\{` + regexp.QuoteMeta(key) + `(?::[^}]*)?\}`)
		rendered = pattern.ReplaceAllLiteralString(rendered, values[key])
	}

	rendered = strings.ReplaceAll(rendered, openBraceSentinel, "{{")
	rendered = strings.ReplaceAll(rendered, closeBraceSentinel, "}}")

	return RenderResult{
		Text:          rendered,
		Unresolved:    findUnresolved(rendered, values),
		AvailableKeys: keys,
	}
}

// buildValues converts the record to its display-string mapping and layers
// the derived conditional fragments on top. Derived keys override any
// same-named raw field.
func buildValues(rec Record, currencyLabel string) map[string]string {
	values := make(map[string]string, len(rec)+2)
	for key, f := range rec {
		values[key] = f.String()
	}

	values["tax_row"] = ""
	if f, ok := rec["tax"]; ok && !f.Null {
		values["tax_row"] = fmt.Sprintf(taxRowFragment, f.Value, currencyLabel)
	}

	values["total_row"] = ""
	if f, ok := rec["total"]; ok && !f.Null {
		values["total_row"] = fmt.Sprintf(totalRowFragment, f.Value, currencyLabel)
	}

	return values
}

// findUnresolved scans the rendered text for leftover {identifier} tokens
// whose name has no matching key. Style blocks are stripped from a copy
// first so CSS braces never count as placeholders; the rendered text itself
// is never mutated while scanning.
func findUnresolved(rendered string, values map[string]string) []string {
	nonStyle := styleBlockPattern.ReplaceAllString(rendered, "")

	seen := make(map[string]struct{})
	var unresolved []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(nonStyle, -1) {
		name := m[1]
		if _, known := values[name]; known {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unresolved = append(unresolved, name)
	}
	sort.Strings(unresolved)
	return unresolved
}
