package main

import (
	"fmt"
	"io"
	stdslog "log/slog"
	"os"

	"github.com/radkit/radreport"
	"github.com/radkit/radreport/re2"
	"github.com/radkit/radreport/regexp"
	radslog "github.com/radkit/radreport/slog"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	text, err := c.readReport(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	extractor, err := c.buildExtractor(deps.Stderr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radreport.ErrorMessage(err))
		return err
	}

	if c.Section != "" {
		section, err := extractor.ExtractSection(text, radreport.Section(c.Section))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", radreport.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, section)
		return nil
	}

	report, err := extractor.Extract(text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", radreport.ErrorMessage(err))
		return err
	}

	out, err := report.JSON(c.OmitAbsent)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

// readReport loads the report text from the path argument or stdin.
func (c *ParseCmd) readReport(stdin io.Reader) (string, error) {
	if c.Path == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(c.Path)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(b), nil
}

// buildExtractor wires the configured engine and diagnostics into a
// ReportExtractor.
func (c *ParseCmd) buildExtractor(stderr io.Writer) (*radreport.ReportExtractor, error) {
	var engine radreport.Engine
	switch c.Engine {
	case "re2":
		engine = re2.NewEngine()
	default:
		engine = regexp.NewEngine()
	}

	cfg := radreport.DefaultReportConfig()
	cfg.IncludeStartMarker = !c.NoMarker
	cfg.WordBoundary = c.WordBoundary
	cfg.MatchStrategy = radreport.MatchStrategy(c.Strategy)

	if c.Verbose {
		logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{
			Level: stdslog.LevelDebug,
		}))
		engine = radslog.NewLoggingEngine(engine, logger)
		cfg.Sink = radslog.NewSink(logger)
	}

	return radreport.NewReportExtractor(engine, cfg)
}
