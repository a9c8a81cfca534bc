package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	invoicegen "github.com/avdeyev/go-invoicegen"
	"github.com/avdeyev/go-invoicegen/internal/config"
	"github.com/avdeyev/go-invoicegen/internal/fileutil"
	"github.com/avdeyev/go-invoicegen/internal/hints"
	"github.com/avdeyev/go-invoicegen/internal/prompt"
)

// Sentinel errors for CLI operations.
var (
	errCancelled      = errors.New("cancelled by user")
	ErrNoDataFiles    = errors.New("no data files found")
	ErrNoTemplates    = errors.New("no template files found")
	ErrNoIdentifiers  = errors.New("no invoice identifiers found in data")
	ErrRecordNotFound = errors.New("no record matches the selected invoice id")
	ErrReadTemplate   = errors.New("failed to read template file")
)

// Generator is the interface for the generation service.
type Generator interface {
	Generate(ctx context.Context, input invoicegen.Input) (*invoicegen.Report, error)
}

// Compile-time interface implementation check.
var _ Generator = (*invoicegen.Service)(nil)

// runEnv bundles the collaborators of the interactive flow so tests can
// substitute streams and a fake service.
type runEnv struct {
	menu    *prompt.Menu
	out     io.Writer
	svc     Generator
	cfg     *config.Config
	flags   *cliFlags
	openPDF func(path string) error
}

// run drives the interactive flow: choose a data file, choose a template,
// choose an invoice id, then generate and optionally open the PDF.
// An empty input at any prompt returns errCancelled, which maps to a clean
// zero exit.
func run(ctx context.Context, env *runEnv) error {
	env.menu.PrintHeader("PDF DOCUMENT GENERATOR")

	if err := ensureDirs(env.cfg); err != nil {
		return err
	}

	dataFiles, err := fileutil.ListByExtensions(env.cfg.Dirs.Data, "csv", "json")
	if err != nil {
		return err
	}
	env.menu.Print("AVAILABLE DATA FILES", formatDataFiles(dataFiles))
	if len(dataFiles) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoDataFiles, env.cfg.Dirs.Data,
			hints.ForEmptyDataDir(env.cfg.Dirs.Data))
	}

	templates, err := fileutil.ListByExtensions(env.cfg.Dirs.Templates, "html", "md", "markdown")
	if err != nil {
		return err
	}
	env.menu.Print("AVAILABLE TEMPLATES", formatNames(templates))
	if len(templates) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoTemplates, env.cfg.Dirs.Templates,
			hints.ForEmptyTemplatesDir(env.cfg.Dirs.Templates))
	}

	dataChoice, ok, err := env.menu.Choose(len(dataFiles), "Select a data file")
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	dataFile := dataFiles[dataChoice-1]
	fmt.Fprintf(env.out, "\nData file: %s\n", filepath.Base(dataFile))

	records, err := invoicegen.LoadDataFile(dataFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "Loaded %d record(s)\n", len(records))

	tmplChoice, ok, err := env.menu.Choose(len(templates), "Select a template")
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	tmplFile := templates[tmplChoice-1]
	fmt.Fprintf(env.out, "\nTemplate: %s\n", filepath.Base(tmplFile))

	tmplContent, err := os.ReadFile(tmplFile) // #nosec G304 -- path comes from the interactive file picker
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}

	ids := invoicegen.ListIdentifiers(records)
	if len(ids) == 0 {
		return fmt.Errorf("%w%s", ErrNoIdentifiers, hints.ForMissingIdentifiers())
	}
	env.menu.Print("AVAILABLE INVOICES", formatInvoiceIDs(ids))

	idChoice, ok, err := env.menu.Choose(len(ids), "Select an invoice id")
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	invoiceID := ids[idChoice-1]
	fmt.Fprintf(env.out, "\nInvoice id: %s\n", invoiceID)

	record, found := invoicegen.FindRecord(records, invoiceID)
	if !found {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, invoiceID)
	}

	if env.flags.verbose {
		printRecordFields(env.out, record)
	}

	outputPath := filepath.Join(env.cfg.Dirs.Output, "invoice_"+invoiceID+".pdf")
	fmt.Fprintf(env.out, "\nGenerating PDF for invoice #%s...\n", invoiceID)

	report, err := env.svc.Generate(ctx, invoicegen.Input{
		Template:   string(tmplContent),
		Markdown:   invoicegen.IsMarkdownTemplate(tmplFile),
		Record:     record,
		OutputPath: outputPath,
	})
	if err != nil {
		return err
	}
	printReportWarnings(env.out, report)

	fmt.Fprintf(env.out, "PDF created: %s\n", report.OutputPath)

	if !env.flags.noOpen && env.cfg.Viewer.OpenAfter {
		if err := env.openPDF(report.OutputPath); err != nil {
			// Opening is best-effort; the document is already on disk.
			fmt.Fprintf(env.out, "Could not open the PDF automatically: %v\n", err)
			fmt.Fprintf(env.out, "The file is saved at: %s\n", report.OutputPath)
		}
	}

	env.menu.PrintHeader("GENERATION COMPLETE")
	return nil
}

// ensureDirs creates the data, templates and output directories if absent.
func ensureDirs(cfg *config.Config) error {
	for _, dir := range []string{cfg.Dirs.Data, cfg.Dirs.Templates, cfg.Dirs.Output} {
		if err := fileutil.EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// printReportWarnings surfaces non-fatal render diagnostics.
func printReportWarnings(out io.Writer, report *invoicegen.Report) {
	if report.Degraded {
		fmt.Fprintln(out, "[WARNING] Template rendering degraded; the raw template was used")
	}
	if len(report.Unresolved) > 0 {
		fmt.Fprintf(out, "[WARNING] Unresolved placeholders in template: %s\n",
			strings.Join(report.Unresolved, ", "))
		fmt.Fprintf(out, "[WARNING] Available keys: %s\n",
			strings.Join(report.AvailableKeys, ", "))
	}
	for _, w := range report.EngineWarnings {
		fmt.Fprintf(out, "[WARNING] PDF engine: %s\n", w)
	}
}

// formatDataFiles renders data file menu entries as "name (EXT)".
func formatDataFiles(paths []string) []string {
	items := make([]string, len(paths))
	for i, p := range paths {
		ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(p), "."))
		items[i] = fmt.Sprintf("%s (%s)", filepath.Base(p), ext)
	}
	return items
}

// formatNames renders menu entries as bare file names.
func formatNames(paths []string) []string {
	items := make([]string, len(paths))
	for i, p := range paths {
		items[i] = filepath.Base(p)
	}
	return items
}

// formatInvoiceIDs renders invoice menu entries as "Invoice #<id>".
func formatInvoiceIDs(ids []string) []string {
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = "Invoice #" + id
	}
	return items
}

// printRecordFields dumps the selected record's display values in sorted
// key order. Null fields show as empty strings, same as in substitution.
func printRecordFields(out io.Writer, rec invoicegen.Record) {
	fmt.Fprintln(out, "Record fields:")
	for _, key := range recordKeys(rec) {
		value, _ := rec.Get(key)
		fmt.Fprintf(out, "  %s = %q\n", key, value)
	}
}

// recordKeys returns the record's field names in sorted order.
func recordKeys(rec invoicegen.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
