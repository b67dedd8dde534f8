package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"schedlab/internal/chart"
	"schedlab/internal/experiment"
)

// addChartCommands adds the gantt and bars commands.
func (app *App) addChartCommands(rootCmd *cobra.Command) {
	ganttCmd := &cobra.Command{
		Use:   "gantt <scheduler> [seed]",
		Short: "Write Gantt charts for one run or every seed of a scheduler",
		Long: `Write a Gantt chart per run: each process gets a waiting bar from createdTime to
startedTime and a running bar from startedTime to terminatedTime. Without a seed,
one chart is written for every input-parameter seed that has output.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			sortBy, _ := cmd.Flags().GetString("sort-by")
			format, _ := cmd.Flags().GetString("format")
			scheduler := args[0]

			plots := []experiment.SeededPlot{}
			if len(args) == 2 {
				p, err := exp.PlotGantt(scheduler, args[1], sortBy)
				if err != nil {
					return err
				}
				plots = append(plots, experiment.SeededPlot{Seed: args[1], Plot: p})
			} else {
				if plots, err = exp.PlotGanttAll(scheduler, sortBy); err != nil {
					return err
				}
			}

			for _, sp := range plots {
				if err := app.saveChart(sp.Plot, format, scheduler, sp.Seed, "gantt"); err != nil {
					return err
				}
			}
			return nil
		},
	}
	ganttCmd.Flags().String("sort-by", experiment.DefaultSortBy, "Order rows ascending by this column")
	ganttCmd.Flags().String("format", "", "Chart format (svg|png|pdf|eps|jpg|tif) [default: charts.format]")

	barsCmd := &cobra.Command{
		Use:   "bars <scheduler> <seed>",
		Short: "Write a grouped bar chart of trace columns for one run",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			sortBy, _ := cmd.Flags().GetString("sort-by")
			format, _ := cmd.Flags().GetString("format")
			columns, _ := cmd.Flags().GetStringSlice("columns")

			p, err := exp.PlotColumns(args[0], args[1], columns, sortBy)
			if err != nil {
				return err
			}
			return app.saveChart(p, format, args[0], args[1], "bars")
		},
	}
	barsCmd.Flags().String("sort-by", experiment.DefaultSortBy, "Order rows ascending by this column")
	barsCmd.Flags().StringSlice("columns", experiment.DefaultPlotColumns, "Columns to plot")
	barsCmd.Flags().String("format", "", "Chart format (svg|png|pdf|eps|jpg|tif) [default: charts.format]")

	rootCmd.AddCommand(ganttCmd, barsCmd)
}

// saveChart writes p under charts.dir and reports the path.
func (app *App) saveChart(p *plot.Plot, format string, parts ...string) error {
	if format == "" {
		format = app.Config.Charts.Format
	}
	path := filepath.Join(app.Config.Charts.Dir, chart.FileName(format, parts...))
	width, height := app.Config.Charts.Size()
	if err := chart.Save(p, path, width, height); err != nil {
		return err
	}
	app.printer.Success("wrote " + path)
	return nil
}
