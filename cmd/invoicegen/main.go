package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	invoicegen "github.com/avdeyev/go-invoicegen"
	"github.com/avdeyev/go-invoicegen/internal/config"
	"github.com/avdeyev/go-invoicegen/internal/fileutil"
	"github.com/avdeyev/go-invoicegen/internal/opener"
	"github.com/avdeyev/go-invoicegen/internal/prompt"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}

	if flags.version {
		fmt.Printf("invoicegen %s\n", Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}

	timeout := time.Duration(cfg.Render.TimeoutSeconds) * time.Second
	if flags.timeout > 0 {
		timeout = time.Duration(flags.timeout) * time.Second
	}

	font := resolveFont(cfg, flags.verbose)

	svc := invoicegen.New(
		invoicegen.WithTimeout(timeout),
		invoicegen.WithFont(font),
		invoicegen.WithCurrencyLabel(cfg.Render.CurrencyLabel),
	)
	defer svc.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	env := &runEnv{
		menu:    prompt.New(os.Stdin, os.Stdout),
		out:     os.Stdout,
		svc:     svc,
		cfg:     cfg,
		flags:   flags,
		openPDF: opener.Open,
	}

	// The prompt loop blocks on stdin, so cancellation is raced against the
	// flow instead of being polled inside it. An interrupt terminates the
	// run with a clean zero exit and no stack trace.
	done := make(chan error, 1)
	go func() { done <- run(ctx, env) }()

	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout, "\n\nOperation cancelled.")
		os.Exit(ExitSuccess)
	case err = <-done:
	}

	if err != nil {
		if errors.Is(err, errCancelled) {
			fmt.Fprintln(os.Stdout, "\nOperation cancelled.")
			os.Exit(ExitSuccess)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// resolveFont returns the font handle for this run: the configured font
// file when set and present, otherwise whatever platform discovery finds.
func resolveFont(cfg *config.Config, verbose bool) *invoicegen.FontHandle {
	if cfg.Font.Path != "" {
		if fileutil.FileExists(cfg.Font.Path) {
			family := cfg.Font.Family
			if family == "" {
				family = "Arial"
			}
			return &invoicegen.FontHandle{Path: cfg.Font.Path, Family: family}
		}
		fmt.Fprintf(os.Stderr, "[WARNING] configured font not found: %s\n", cfg.Font.Path)
	}

	font := invoicegen.DiscoverFont()
	if verbose {
		if font != nil {
			fmt.Fprintf(os.Stderr, "Cyrillic-capable font: %s\n", font.Path)
		} else {
			fmt.Fprintln(os.Stderr, "No Cyrillic-capable font found; using generic families")
		}
	}
	return font
}
