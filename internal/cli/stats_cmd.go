package cli

import (
	"github.com/alexanderramin/ember/internal/report"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the summary panel without the heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := aggregateRange(app, opts)
			if err != nil {
				return err
			}
			return writeStdout(app, []byte(report.RenderSummary(result)+"\n"))
		},
	}

	addRangeFlags(cmd.Flags(), app, opts)

	return cmd
}
