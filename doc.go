// Package invoicegen turns tabular records (CSV or JSON) into invoice-style
// PDF documents using HTML templates with flat placeholder substitution.
//
// # Quick Start
//
// Create a service, generate a document, and close when done:
//
//	svc := invoicegen.New()
//	defer svc.Close()
//
//	records, err := invoicegen.LoadDataFile("data/invoices.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rec, ok := invoicegen.FindRecord(records, "A1")
//	if !ok {
//	    log.Fatal("invoice A1 not found")
//	}
//
//	report, err := svc.Generate(ctx, invoicegen.Input{
//	    Template:   tmplText,
//	    Record:     rec,
//	    OutputPath: "output/invoice_A1.pdf",
//	})
//
// The report carries the rendered HTML, any unresolved placeholder names,
// and warnings from the PDF engine.
//
// # Pipeline
//
//  1. Data loading (CSV via encoding/csv with a lenient fallback pass,
//     JSON with array or single-object roots)
//  2. Record selection by invoice identifier fallback chain
//  3. Placeholder substitution ({name} and {name:format}, with literal
//     {{ and }} preserved, and derived tax_row/total_row fragments)
//  4. Font-fallback CSS injection for Cyrillic support
//  5. PDF rendering via headless Chrome (go-rod)
//
// # Templates
//
// Templates are plain HTML files. Markdown templates are also accepted and
// converted to HTML (Goldmark, GFM) before substitution. Placeholders are
// flat key/value only: no loops, conditionals, or nesting.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package invoicegen
