// Package cli provides the schedlab command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schedlab/internal/config"
	"schedlab/internal/experiment"
	"schedlab/internal/logger"
	"schedlab/internal/output"
)

// App holds state shared by all commands of one invocation.
type App struct {
	Config *config.Config

	viper      *viper.Viper
	configFile string
	stdout     io.Writer
	printer    *output.Printer
	experiment *experiment.Experiment
}

// NewApp creates an application writing command output to stdout.
func NewApp(stdout io.Writer) *App {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &App{
		viper:  config.New(),
		stdout: stdout,
	}
}

// CreateRootCommand creates the root command with all subcommands attached.
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schedlab",
		Short: "Analyse CPU scheduler simulation results",
		Long: `schedlab loads a scheduler simulation experiment directory (input parameters,
simulator parameters and per-scheduler output traces) and answers questions about it:
parameter lookups, trace tables, CPU utilization, Gantt and bar charts, and reports.`,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "d", config.DefaultDir, "Experiment directory")
	flags.StringVar(&app.configFile, "config", "", "Config file (default ./schedlab.yaml)")
	flags.String("log-level", "", "Log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.String("mode", "auto", "Output mode (auto|plain|styled|json)")
	flags.String("theme", output.DefaultTheme, "Output theme ("+strings.Join(output.ThemeNames(), "|")+")")

	for name, key := range config.FlagKeys {
		if err := app.viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
		}
	}

	app.addExperimentCommands(rootCmd)
	app.addChartCommands(rootCmd)
	app.addReportCommand(rootCmd)
	app.addVersionCommand(rootCmd)

	return rootCmd
}

// setup resolves configuration, logging and the printer before any command runs.
func (app *App) setup(_ *cobra.Command, _ []string) error {
	if _, err := config.LoadDotEnv("."); err != nil {
		return err
	}
	cfg, err := config.Load(app.viper, app.configFile)
	if err != nil {
		return err
	}
	// The experiment directory may carry its own .env; reload so it applies.
	if cfg.Dir != "." {
		loaded, err := config.LoadDotEnv(cfg.Dir)
		if err != nil {
			return err
		}
		if len(loaded) > 0 {
			if cfg, err = config.Load(app.viper, app.configFile); err != nil {
				return err
			}
		}
	}
	app.Config = cfg

	if err := logger.Configure(cfg.Log.Level, cfg.Log.File); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	mode, err := output.ParseMode(cfg.Output.Mode)
	if err != nil {
		return err
	}
	theme, err := output.LoadTheme(cfg.Output.Theme)
	if err != nil {
		return err
	}
	app.printer = output.NewPrinter(
		output.WithWriter(app.stdout),
		output.WithMode(mode),
		output.WithStyles(theme),
	)
	output.SetGlobalPrinter(app.printer)
	return nil
}

// loadExperiment loads the configured experiment once per invocation.
func (app *App) loadExperiment() (*experiment.Experiment, error) {
	if app.experiment != nil {
		return app.experiment, nil
	}
	exp, err := experiment.New(app.Config.Dir)
	if err != nil {
		return nil, err
	}
	app.experiment = exp
	return exp, nil
}
