package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"schedlab/internal/output"
	"schedlab/internal/report"
	"schedlab/internal/version"
)

// addReportCommand adds the report command.
func (app *App) addReportCommand(rootCmd *cobra.Command) {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the experiment",
		Long: `Summarize the experiment: seeds, schedulers, per-run statistics (CPU utilization,
mean turnaround, mean waiting time, makespan) and input parameters.

Formats: markdown (rendered for the terminal), raw (markdown source), yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exp, err := app.loadExperiment()
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			switch format {
			case "markdown", "md":
				rendered, err := report.RenderMarkdown(report.Markdown(exp), app.Config.Report.Style, app.Config.Report.Width)
				if err != nil {
					return err
				}
				app.printer.Print(rendered)
			case "raw":
				app.printer.Print(report.Markdown(exp))
			case "yaml":
				out, err := report.YAML(exp)
				if err != nil {
					return err
				}
				app.printer.Print(string(out))
			default:
				return fmt.Errorf("unknown report format %q (want markdown, raw or yaml)", format)
			}
			return nil
		},
	}
	reportCmd.Flags().StringP("format", "f", "markdown", "Report format (markdown|raw|yaml)")
	rootCmd.AddCommand(reportCmd)
}

// addVersionCommand adds the version command.
func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if constraint, _ := cmd.Flags().GetString("check"); constraint != "" {
				ok, err := version.Satisfies(constraint)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s v%s does not satisfy %q", version.Name, version.Version, constraint)
				}
				app.printer.Success(fmt.Sprintf("%s v%s satisfies %q", version.Name, version.Version, constraint))
				return nil
			}
			if app.printer.Mode() == output.ModeJSON {
				info, err := version.GetInfo()
				if err != nil {
					return err
				}
				return app.printer.Data(info)
			}
			if detailed, _ := cmd.Flags().GetBool("detailed"); detailed {
				app.printer.Println(version.GetDetailedVersion())
				return nil
			}
			app.printer.Println(version.GetFormattedVersion())
			return nil
		},
	}
	versionCmd.Flags().Bool("detailed", false, "Show detailed version information")
	versionCmd.Flags().String("check", "", "Fail unless the version satisfies this semver constraint (e.g. \">= 0.1, < 1\")")
	rootCmd.AddCommand(versionCmd)
}
