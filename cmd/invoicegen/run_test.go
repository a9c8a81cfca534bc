package main

// Notes:
// - The interactive flow is driven through in-memory streams and a fake
//   Generator; no browser and no real PDF are involved.
// - Directory listings come from a per-test temp layout, so menu ordering
//   is deterministic (ListByExtensions sorts by name).

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	invoicegen "github.com/avdeyev/go-invoicegen"
	"github.com/avdeyev/go-invoicegen/internal/config"
	"github.com/avdeyev/go-invoicegen/internal/prompt"
)

// fakeGenerator is a Generator stub recording the last input.
type fakeGenerator struct {
	lastInput invoicegen.Input
	report    *invoicegen.Report
	err       error
}

var _ Generator = (*fakeGenerator)(nil)

func (f *fakeGenerator) Generate(_ context.Context, input invoicegen.Input) (*invoicegen.Report, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	report := *f.report
	report.OutputPath = input.OutputPath
	return &report, nil
}

// testEnv is a run environment over a temp directory layout.
type testEnv struct {
	env     *runEnv
	svc     *fakeGenerator
	out     *bytes.Buffer
	root    string
	opened  []string
	openErr error
}

func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()

	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Dirs.Data = filepath.Join(root, "data")
	cfg.Dirs.Templates = filepath.Join(root, "templates")
	cfg.Dirs.Output = filepath.Join(root, "output")

	te := &testEnv{
		svc:  &fakeGenerator{report: &invoicegen.Report{}},
		out:  &bytes.Buffer{},
		root: root,
	}
	te.env = &runEnv{
		menu:  prompt.New(strings.NewReader(input), te.out),
		out:   te.out,
		svc:   te.svc,
		cfg:   cfg,
		flags: &cliFlags{},
		openPDF: func(path string) error {
			te.opened = append(te.opened, path)
			return te.openErr
		},
	}
	return te
}

func (te *testEnv) writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(te.root, dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const sampleJSON = `[{"id":"A1","amount":"50"},{"id":"B2","amount":"75"}]`

// ---------------------------------------------------------------------------
// TestRun - Happy Path
// ---------------------------------------------------------------------------

func TestRunHappyPath(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "1\n1\n1\n")
	te.writeFile(t, "data", "invoices.json", sampleJSON)
	te.writeFile(t, "templates", "invoice.html", "<p>{id}: {amount}</p>")

	if err := run(context.Background(), te.env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	in := te.svc.lastInput
	if in.Template != "<p>{id}: {amount}</p>" {
		t.Errorf("Template = %q", in.Template)
	}
	if in.Markdown {
		t.Error("Markdown = true for an HTML template")
	}
	if got, _ := in.Record.Get("id"); got != "A1" {
		t.Errorf("Record id = %q, want A1", got)
	}
	wantOutput := filepath.Join(te.root, "output", "invoice_A1.pdf")
	if in.OutputPath != wantOutput {
		t.Errorf("OutputPath = %q, want %q", in.OutputPath, wantOutput)
	}

	if len(te.opened) != 1 || te.opened[0] != wantOutput {
		t.Errorf("opened = %v, want the generated PDF", te.opened)
	}

	output := te.out.String()
	for _, want := range []string{
		"PDF DOCUMENT GENERATOR",
		"invoices.json (JSON)",
		"Loaded 2 record(s)",
		"Invoice #A1",
		"Invoice #B2",
		"PDF created: " + wantOutput,
		"GENERATION COMPLETE",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRunMarkdownTemplate(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "1\n1\n1\n")
	te.writeFile(t, "data", "invoices.json", sampleJSON)
	te.writeFile(t, "templates", "invoice.md", "# Invoice {id}\n")

	if err := run(context.Background(), te.env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !te.svc.lastInput.Markdown {
		t.Error("Markdown = false for a .md template")
	}
}

func TestRunNoOpenFlag(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "1\n1\n1\n")
	te.env.flags.noOpen = true
	te.writeFile(t, "data", "invoices.json", sampleJSON)
	te.writeFile(t, "templates", "invoice.html", "<p>{id}</p>")

	if err := run(context.Background(), te.env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if len(te.opened) != 0 {
		t.Errorf("opened = %v, want no viewer launch", te.opened)
	}
}

func TestRunConfigOpenAfterDisabled(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "1\n1\n1\n")
	te.env.cfg.Viewer.OpenAfter = false
	te.writeFile(t, "data", "invoices.json", sampleJSON)
	te.writeFile(t, "templates", "invoice.html", "<p>{id}</p>")

	if err := run(context.Background(), te.env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if len(te.opened) != 0 {
		t.Errorf("opened = %v, want no viewer launch with openAfter disabled", te.opened)
	}
}

func TestRunVerboseRecordDump(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "1\n1\n1\n")
	te.env.flags.verbose = true
	te.writeFile(t, "data", "invoices.json", sampleJSON)
	te.writeFile(t, "templates", "invoice.html", "<p>{id}</p>")

	if err := run(context.Background(), te.env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	output := te.out.String()
	for _, want := range []string{
		"Record fields:",
		`amount = "50"`,
		`id = "A1"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRunOpenFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "1\n1\n1\n")
	te.openErr = errors.New("no display")
	te.writeFile(t, "data", "invoices.json", sampleJSON)
	te.writeFile(t, "templates", "invoice.html", "<p>{id}</p>")

	if err := run(context.Background(), te.env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(te.out.String(), "Could not open the PDF automatically") {
		t.Errorf("output missing best-effort notice:\n%s", te.out.String())
	}
}

// ---------------------------------------------------------------------------
// TestRun - Cancellation
// ---------------------------------------------------------------------------

func TestRunCancellation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"at data file prompt", "\n"},
		{"at template prompt", "1\n\n"},
		{"at invoice prompt", "1\n1\n\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t, tt.input)
			te.writeFile(t, "data", "invoices.json", sampleJSON)
			te.writeFile(t, "templates", "invoice.html", "<p>{id}</p>")

			err := run(context.Background(), te.env)
			if !errors.Is(err, errCancelled) {
				t.Fatalf("run() error = %v, want errCancelled", err)
			}
			if exitCodeFor(err) != ExitSuccess {
				t.Error("cancellation must map to a clean exit")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun - Empty Directories and Bad Data
// ---------------------------------------------------------------------------

func TestRunEmptyDirectories(t *testing.T) {
	t.Parallel()

	t.Run("no data files", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv(t, "")
		err := run(context.Background(), te.env)
		if !errors.Is(err, ErrNoDataFiles) {
			t.Fatalf("run() error = %v, want ErrNoDataFiles", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error = %q, want actionable hint", err)
		}
	})

	t.Run("no templates", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv(t, "")
		te.writeFile(t, "data", "invoices.json", sampleJSON)

		err := run(context.Background(), te.env)
		if !errors.Is(err, ErrNoTemplates) {
			t.Fatalf("run() error = %v, want ErrNoTemplates", err)
		}
	})

	t.Run("no identifiers in data", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv(t, "1\n1\n")
		te.writeFile(t, "data", "invoices.json", `[{"amount":"50"}]`)
		te.writeFile(t, "templates", "invoice.html", "<p>x</p>")

		err := run(context.Background(), te.env)
		if !errors.Is(err, ErrNoIdentifiers) {
			t.Fatalf("run() error = %v, want ErrNoIdentifiers", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRun - Generation Outcomes
// ---------------------------------------------------------------------------

func TestRunGeneratorError(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "1\n1\n1\n")
	te.svc.err = invoicegen.ErrPDFGeneration
	te.writeFile(t, "data", "invoices.json", sampleJSON)
	te.writeFile(t, "templates", "invoice.html", "<p>{id}</p>")

	err := run(context.Background(), te.env)
	if !errors.Is(err, invoicegen.ErrPDFGeneration) {
		t.Fatalf("run() error = %v, want ErrPDFGeneration", err)
	}
	if exitCodeFor(err) != ExitBrowser {
		t.Error("engine failure must map to the browser exit code")
	}
}

func TestRunReportWarnings(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, "1\n1\n1\n")
	te.svc.report = &invoicegen.Report{
		Unresolved:     []string{"customer", "due_date"},
		AvailableKeys:  []string{"amount", "id"},
		Degraded:       true,
		EngineWarnings: []string{"net::ERR_FAILED"},
	}
	te.writeFile(t, "data", "invoices.json", sampleJSON)
	te.writeFile(t, "templates", "invoice.html", "<p>{customer}</p>")

	if err := run(context.Background(), te.env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	output := te.out.String()
	for _, want := range []string{
		"[WARNING] Template rendering degraded",
		"Unresolved placeholders in template: customer, due_date",
		"Available keys: amount, id",
		"[WARNING] PDF engine: net::ERR_FAILED",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

// ---------------------------------------------------------------------------
// TestMenuFormatting Helpers
// ---------------------------------------------------------------------------

func TestFormatDataFiles(t *testing.T) {
	t.Parallel()

	got := formatDataFiles([]string{"data/a.csv", "data/b.json"})
	want := []string{"a.csv (CSV)", "b.json (JSON)"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("formatDataFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatInvoiceIDs(t *testing.T) {
	t.Parallel()

	got := formatInvoiceIDs([]string{"A1", "B2"})
	if got[0] != "Invoice #A1" || got[1] != "Invoice #B2" {
		t.Errorf("formatInvoiceIDs() = %v", got)
	}
}
