package main

import (
	"context"
	"io"
)

// Dependencies holds configuration and streams for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse ParseCmd `cmd:"" help:"Parse a report into its canonical sections"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Path         string `arg:"" optional:"" help:"Report file (reads stdin when omitted)"`
	Section      string `short:"s" help:"Extract a single section instead of the full report (title, history, technique, comparison, findings, impression)"`
	Engine       string `default:"regexp" enum:"regexp,re2" help:"Pattern engine"`
	Strategy     string `default:"greedy" enum:"greedy,sequential" help:"End-marker matching strategy"`
	WordBoundary bool   `short:"w" help:"Anchor marker matches to word edges"`
	NoMarker     bool   `help:"Strip the section heading from the output"`
	OmitAbsent   bool   `help:"Leave absent sections out of the JSON output"`
	Verbose      bool   `short:"v" help:"Log pattern compilation and marker diagnostics"`
}
