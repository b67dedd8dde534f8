package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"schedlab/internal/experiment"
	"schedlab/internal/output"
	"schedlab/internal/params"
	"schedlab/internal/report"
	"schedlab/internal/trace"
)

// addExperimentCommands adds the read-only query commands.
func (app *App) addExperimentCommands(rootCmd *cobra.Command) {
	seedsCmd := &cobra.Command{
		Use:   "seeds",
		Short: "List input-parameter seeds",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			app.printer.List(exp.AllSeeds())
			return nil
		},
	}

	schedulersCmd := &cobra.Command{
		Use:   "schedulers",
		Short: "List schedulers with output traces",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			app.printer.List(exp.Schedulers())
			return nil
		},
	}

	paramsCmd := &cobra.Command{
		Use:   "params <seed>",
		Short: "Show the input parameters of a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			table, err := exp.InputParams(args[0])
			if err != nil {
				return err
			}
			app.printParams(table)
			return nil
		},
	}

	paramsDiffCmd := &cobra.Command{
		Use:   "diff <seedA> <seedB>",
		Short: "Compare the input parameters of two seeds",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			a, err := exp.InputParams(args[0])
			if err != nil {
				return err
			}
			b, err := exp.InputParams(args[1])
			if err != nil {
				return err
			}
			app.printDiff(report.DiffParams(a, b))
			return nil
		},
	}
	paramsCmd.AddCommand(paramsDiffCmd)

	simParamsCmd := &cobra.Command{
		Use:   "simparams [seed]",
		Short: "Show simulator parameters, for one seed or all files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			seeds := exp.SimulatorSeeds()
			if len(args) == 1 {
				seeds = args[:1]
			}
			for _, seed := range seeds {
				table, err := exp.SimulatorParams(seed)
				if err != nil {
					return err
				}
				if len(seeds) > 1 {
					app.printer.Heading(seed)
				}
				app.printParams(table)
			}
			return nil
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace <scheduler> <seed>",
		Short: "Print the output trace of one run",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			tr, err := exp.OutputForSeed(args[0], args[1])
			if err != nil {
				return err
			}
			if sortBy, _ := cmd.Flags().GetString("sort-by"); sortBy != "" {
				if tr, err = tr.SortBy(sortBy); err != nil {
					return err
				}
			}
			if columns, _ := cmd.Flags().GetStringSlice("columns"); len(columns) > 0 {
				if tr, err = tr.Select(columns...); err != nil {
					return err
				}
			}
			app.printTrace(tr)
			return nil
		},
	}
	traceCmd.Flags().String("sort-by", "", "Order rows ascending by this column")
	traceCmd.Flags().StringSlice("columns", nil, "Only show these columns (id is always kept)")

	columnCmd := &cobra.Command{
		Use:   "column <name>",
		Short: "Gather one trace column across every scheduler and seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			table, err := exp.OutputColumn(args[0])
			if err != nil {
				return err
			}
			headers := append([]string{"row"}, table.Names...)
			rows := make([][]string, table.Rows())
			for i := range rows {
				row := []string{strconv.Itoa(i)}
				for _, col := range table.Values {
					row = append(row, formatFloat(col[i]))
				}
				rows[i] = row
			}
			app.printer.Table(headers, rows)
			return nil
		},
	}

	utilizationCmd := &cobra.Command{
		Use:   "utilization [scheduler [seed]]",
		Short: "Compute CPU utilization per run",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			runs, err := selectRuns(exp, args)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				value := "error: "
				util, err := exp.CPUUtilization(r[0], r[1])
				if err != nil {
					// A single requested run fails the command; in listings the error is shown inline.
					if len(args) == 2 {
						return err
					}
					value += err.Error()
				} else {
					value = fmt.Sprintf("%.2f", util)
				}
				rows = append(rows, []string{r[0], r[1], value})
			}
			app.printer.Table([]string{"scheduler", "seed", "cpu utilization"}, rows)
			return nil
		},
	}

	rootCmd.AddCommand(seedsCmd, schedulersCmd, paramsCmd, simParamsCmd, traceCmd, columnCmd, utilizationCmd)
}

// selectRuns expands [scheduler [seed]] into (scheduler, seed) pairs in load order.
func selectRuns(exp *experiment.Experiment, args []string) ([][2]string, error) {
	var schedulers []string
	switch len(args) {
	case 0:
		schedulers = exp.Schedulers()
	case 2:
		return [][2]string{{args[0], args[1]}}, nil
	default:
		schedulers = args[:1]
	}

	var runs [][2]string
	for _, s := range schedulers {
		outputs, err := exp.Output(s)
		if err != nil {
			return nil, err
		}
		for _, o := range outputs {
			runs = append(runs, [2]string{s, o.Seed})
		}
	}
	if len(runs) == 0 {
		return nil, errors.New("no runs found")
	}
	return runs, nil
}

func (app *App) printParams(table *params.Table) {
	rows := make([][]string, 0, table.Len())
	for _, name := range table.Names() {
		value, _ := table.Get(name)
		rows = append(rows, []string{name, value, table.Kind(name)})
	}
	app.printer.Table([]string{"parameter", "value", "type"}, rows)
}

func (app *App) printTrace(tr *trace.Trace) {
	columns := tr.Columns()
	headers := append([]string{"process"}, columns...)
	values := make([][]float64, len(columns))
	for i, c := range columns {
		values[i], _ = tr.Column(c)
	}

	rows := make([][]string, tr.Len())
	for i, pid := range tr.ProcessIDs() {
		row := make([]string, 0, len(headers))
		row = append(row, pid)
		for _, col := range values {
			row = append(row, formatFloat(col[i]))
		}
		rows[i] = row
	}
	app.printer.Table(headers, rows)
}

func (app *App) printDiff(lines []report.DiffLine) {
	if app.printer.Mode() == output.ModeJSON {
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = l.String()
		}
		_ = app.printer.Data(out)
		return
	}
	if !report.Changed(lines) {
		app.printer.Info("parameters are identical")
	}
	for _, l := range lines {
		semantic := output.SemanticMuted
		switch l.Op {
		case report.DiffAdded:
			semantic = output.SemanticSuccess
		case report.DiffRemoved:
			semantic = output.SemanticError
		}
		app.printer.Print(app.printer.Styled(semantic, l.String()) + "\n")
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
