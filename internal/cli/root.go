package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is stamped into the root command for --version.
const Version = "0.2.0"

// App holds the collaborators CLI commands need: a clock, the output
// stream, and terminal detection. Tests substitute all three.
type App struct {
	Now           func() time.Time
	Stdout        io.Writer
	IsTerminal    func() bool
	DefaultLogDir string
}

// NewRootCmd creates the top-level "ember" command. Running it with no
// subcommand renders the full report.
func NewRootCmd(app *App) *cobra.Command {
	opts := &reportOptions{}

	root := &cobra.Command{
		Use:           "ember",
		Short:         "Render a calendar heatmap from daily activity logs",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(app, opts)
		},
	}

	addRangeFlags(root.Flags(), app, opts)
	root.Flags().StringVarP(&opts.output, "output", "o", "", "Write the HTML report to this file")
	root.Flags().BoolVar(&opts.open, "open", false, "Write the report to a temp file and open it in the default viewer")
	root.Flags().StringVar(&opts.format, "format", "auto", "Stdout format: term, html, or auto")

	root.AddCommand(newStatsCmd(app))

	return root
}

// addRangeFlags registers the flags shared by every command that walks the
// report range.
func addRangeFlags(fs *pflag.FlagSet, app *App, opts *reportOptions) {
	fs.IntVar(&opts.weeks, "weeks", 52, "Number of weeks to display")
	fs.StringVar(&opts.dir, "dir", app.DefaultLogDir, "Directory holding daily log files")
}
