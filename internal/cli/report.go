package cli

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/alexanderramin/ember/internal/aggregate"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/logparse"
	"github.com/alexanderramin/ember/internal/report"
)

type reportOptions struct {
	weeks  int
	dir    string
	output string
	open   bool
	format string
}

// aggregateRange validates the range flags and runs the aggregation pass.
func aggregateRange(app *App, opts *reportOptions) (aggregate.Result, error) {
	if opts.weeks < 1 {
		return aggregate.Result{}, fmt.Errorf("--weeks must be at least 1, got %d", opts.weeks)
	}
	now := app.Now()
	src := logparse.NewDirSource(opts.dir)
	return aggregate.Run(aggregate.Input{
		Range: domain.NewReportRange(now, opts.weeks),
		Today: now,
		Load:  src.Load,
	}), nil
}

// runReport renders the report to the destination the flags select:
// a temp file plus viewer, an output file, or stdout.
func runReport(app *App, opts *reportOptions) error {
	result, err := aggregateRange(app, opts)
	if err != nil {
		return err
	}

	switch {
	case opts.open:
		doc, err := report.RenderHTML(result)
		if err != nil {
			return err
		}
		path, err := report.WriteTempAndOpen(doc)
		if err != nil {
			return err
		}
		return writeStdout(app, []byte(fmt.Sprintf("report written to %s\n", path)))

	case opts.output != "":
		doc, err := report.RenderHTML(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, doc, 0644); err != nil {
			return fmt.Errorf("writing report to %s: %w", opts.output, err)
		}
		return nil

	default:
		format := opts.format
		if format == "auto" {
			format = "html"
			if app.IsTerminal != nil && app.IsTerminal() {
				format = "term"
			}
		}
		switch format {
		case "term":
			return writeStdout(app, []byte(report.RenderTerminal(result)))
		case "html":
			doc, err := report.RenderHTML(result)
			if err != nil {
				return err
			}
			return writeStdout(app, doc)
		default:
			return fmt.Errorf("unknown format %q (want term, html, or auto)", opts.format)
		}
	}
}

// writeStdout writes to the app's output stream. A consumer that stops
// reading the pipe is a normal way for a run to end, so EPIPE is not an
// error.
func writeStdout(app *App, b []byte) error {
	_, err := app.Stdout.Write(b)
	if errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}
