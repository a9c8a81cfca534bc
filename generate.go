package invoicegen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/avdeyev/go-invoicegen/internal/hints"
)

// outputFilePermissions is the mode for generated PDF files.
const outputFilePermissions = 0o644 // rw-r--r--

// prepareHTML injects font-fallback CSS into the rendered HTML.
//
// Templates without any <style> block receive the full default stylesheet
// (A4, 2cm margins, 12pt body). Templates that carry their own styles only
// get the @font-face rules and a universal font-family override so their
// layout survives intact.
func prepareHTML(htmlContent string, font *FontHandle) string {
	if !hasStyleBlock(htmlContent) {
		return injectStyleBlock(htmlContent, buildDefaultStylesheet(font))
	}
	return injectStyleBlockAtAnchor(htmlContent, buildFontOverrideStyle(font))
}

// removeExistingOutput deletes a pre-existing file at the output path so
// the new PDF always replaces it in place. A removal blocked by access
// restrictions aborts the run with an actionable error; silently writing
// next to a locked file is never acceptable.
func removeExistingOutput(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil // nothing to remove
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s: %v%s", ErrOutputLocked, path, err, hints.ForLockedOutput(path))
		}
		return fmt.Errorf("%w: %s: %v", ErrOutputLocked, path, err)
	}
	return nil
}

// generateDocument runs the full document generation step: font CSS
// injection, HTML-to-PDF conversion, and streaming the result to the
// output path. It returns the prepared HTML and any engine warnings; an
// engine error is fatal and is propagated with its detail.
func generateDocument(ctx context.Context, engine pdfEngine, font *FontHandle, htmlContent, outputPath string) (prepared string, warnings []string, err error) {
	prepared = prepareHTML(htmlContent, font)

	if err := removeExistingOutput(outputPath); err != nil {
		return prepared, nil, err
	}

	result, err := engine.Render(ctx, prepared)
	if err != nil {
		return prepared, nil, err
	}

	if err := os.WriteFile(outputPath, result.PDF, outputFilePermissions); err != nil {
		return prepared, result.Warnings, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	return prepared, result.Warnings, nil
}
