package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/a11yscan/a11yscan/internal/checker"
	"github.com/a11yscan/a11yscan/internal/config"
	"github.com/a11yscan/a11yscan/internal/fetch"
	"github.com/a11yscan/a11yscan/internal/log"
	"github.com/a11yscan/a11yscan/internal/model"
	"github.com/a11yscan/a11yscan/internal/report"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url-or-file]",
		Short: "Check an HTML page for common accessibility issues",
		Long: `Check fetches an HTML page (from a URL or a local file) and reviews it
for common accessibility problems:

- Missing, empty, or very short page title
- Missing headings, missing or duplicated h1, heading level skips
- Images without alt text, with empty alt, or with very short alt
- Links with no visible text or ambiguous text ("click here", "more")
- Form controls without an associated label

The report is written as a plain-text table to the current directory by
default. When no source argument is given, the command prompts for one.

Examples:
  # Check a URL
  a11yscan check https://example.com

  # Check a local HTML file
  a11yscan check page.html

  # Prompt interactively for the source
  a11yscan check

  # Output a Markdown report to a specific path
  a11yscan check --markdown -o report.md https://example.com

  # Print the report to stdout instead of writing a file
  a11yscan check --stdout page.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}

	// Fetch flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the URL fetch")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header for URL fetches")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().StringP("output-dir", "d", "",
		"Directory for generated report files (default: current directory)")
	cmd.Flags().Bool("stdout", false,
		"Print the report to stdout instead of writing a file (with -o, writes both)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .a11yscan in current directory or XDG config)")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Prompt when no source argument was given (interactive mode).
	if cfg.Source == "" {
		source, err := promptSource(cmd)
		if err != nil {
			return err
		}
		if source == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No input provided. Exiting.")
			return nil
		}
		cfg.Source = source
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Cancel the fetch on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runCheck(ctx, cmd.OutOrStdout(), cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the configuration file and cobra
// command flags. Flags set on the command line take precedence over
// file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.Source = args[0]
	}
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the configuration file layer.
	// If the user explicitly specified a config file path, error if not
	// found. If no path was specified, silently skip when no file exists.
	explicitConfigPath := cfg.ConfigFilePath != ""
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		cf, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags explicitly set on the command line override file values.
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, err = cmd.Flags().GetString("output-dir")
		if err != nil {
			return nil, err
		}
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.Stdout, err = cmd.Flags().GetBool("stdout")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// promptSource prints the interactive banner and reads one line of
// input. Returns an empty string when the user provides no source.
func promptSource(cmd *cobra.Command) (string, error) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Basic Accessibility Checker (URL or local HTML)")
	fmt.Fprintln(out, "------------------------------------------------")
	fmt.Fprint(out, "Enter a URL (https://...) or a local HTML file path: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// runCheck executes the fetch-check-report sequence.
// A fetch failure is terminal: the run ends with an error and no report
// file is produced.
func runCheck(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	fmt.Fprintf(out, "\nChecking accessibility for %s: %s\n\n", model.KindOf(cfg.Source), cfg.Source)

	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)

	start := time.Now()
	doc, meta, err := fetcher.Fetch(ctx, cfg.Source)
	if err != nil {
		logger.Error("fetch failed", "source", cfg.Source, "error", err)
		return err
	}
	logger.Debug("document fetched",
		"source", cfg.Source,
		"status", meta.StatusCode,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)

	engine := checker.NewEngine()
	checkReport := engine.Run(doc, meta)
	logger.Debug("checks completed",
		"issues", checkReport.IssueCount,
		"records", len(checkReport.Records),
	)

	path, err := writeReport(out, cfg, checkReport)
	if err != nil {
		return err
	}

	printSummary(out, checkReport, path)
	return nil
}

// writeReport renders the report to stdout, to the output file, or to
// both, and returns the written file path (empty when no file is
// written). With --stdout alone no file is produced; --stdout combined
// with an explicit --output path writes both destinations.
func writeReport(out io.Writer, cfg *config.Config, checkReport *model.Report) (string, error) {
	if cfg.Stdout && cfg.ReportFile == "" {
		_, err := newReportWriter(cfg, out).Write(checkReport)
		return "", err
	}

	path := cfg.ReportFile
	if path == "" {
		path = filepath.Join(cfg.OutputDir, report.Filename(checkReport.Meta, checkReport.GeneratedAt, reportExt(cfg)))
	}

	// Create directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Path derives from user input
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := newReportWriter(cfg, f)
	if cfg.Stdout {
		w = report.NewMultiWriter(newReportWriter(cfg, out), w)
	}
	if _, err := w.Write(checkReport); err != nil {
		return "", err
	}
	return path, nil
}

// newReportWriter selects the report writer for the configured format.
func newReportWriter(cfg *config.Config, w io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(w)
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewTextWriter(w)
	}
}

// reportExt returns the file extension for the configured format.
func reportExt(cfg *config.Config) string {
	switch {
	case cfg.JSONReport:
		return ".json"
	case cfg.MarkdownReport:
		return ".md"
	default:
		return ".txt"
	}
}

// printSummary prints the saved-file path and a one-line outcome.
// The outcome line is colored only when stdout is a terminal.
func printSummary(out io.Writer, checkReport *model.Report, path string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if path != "" {
		fmt.Fprintf(out, "\nReport saved to: %s\n", path)
	}

	if checkReport.HasIssues() {
		warn := color.New(color.FgYellow, color.Bold)
		warn.Fprintf(out, "%d potential issue(s) found across %d categories.\n",
			checkReport.IssueCount, len(checkReport.IssueCategories()))
		return
	}
	ok := color.New(color.FgGreen)
	ok.Fprintln(out, "No obvious issues found by the basic automated checks.")
}
