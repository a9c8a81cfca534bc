package invoicegen

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/avdeyev/go-invoicegen/internal/fileutil"
	"github.com/avdeyev/go-invoicegen/internal/hints"
)

// pdfEngine abstracts the HTML-to-PDF rendering engine so tests can run
// without a browser. The engine accepts UTF-8 HTML and returns the PDF
// bytes together with any non-fatal warnings it produced.
type pdfEngine interface {
	Render(ctx context.Context, htmlContent string) (*EngineResult, error)
	Close() error
}

// EngineResult is the outcome of a successful engine run.
type EngineResult struct {
	PDF      []byte
	Warnings []string
}

// Compile-time interface check.
var _ pdfEngine = (*rodEngine)(nil)

// PDF page dimensions in inches (A4 format, 2cm margins to match the
// injected default stylesheet).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.79
)

// rodEngine renders HTML to PDF using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodEngine struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodEngine creates a rodEngine with the given timeout.
func newRodEngine(timeout time.Duration) *rodEngine {
	return &rodEngine{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (e *rodEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	e.browser = rod.New().ControlURL(u)
	if err := e.browser.Connect(); err != nil {
		e.browser = nil
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	return nil
}

// Close releases browser resources.
func (e *rodEngine) Close() error {
	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// Render writes the HTML to a temp file, opens it in headless Chrome and
// prints it to PDF. Returns explicit errors instead of panicking when
// browser operations fail.
func (e *rodEngine) Render(ctx context.Context, htmlContent string) (*EngineResult, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout, err := renderTimeout(ctx, e.timeout)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := e.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// The budget covers every page operation: load, print, and streaming
	// the PDF bytes back. A signal-only context carries no deadline, so
	// the engine timeout is the bound in the common case.
	page = page.Timeout(timeout)

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return &EngineResult{PDF: pdfBuf}, nil
}

// renderTimeout returns the time budget for one render: the remaining time
// to the caller's deadline when one is set, the engine fallback otherwise.
// An already-expired deadline short-circuits before any browser work.
func renderTimeout(ctx context.Context, fallback time.Duration) (time.Duration, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return fallback, nil
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0, context.DeadlineExceeded
	}
	return remaining, nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
