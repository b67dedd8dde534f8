// Package main provides the schedlab CLI entry point.
// schedlab inspects the results of CPU scheduler simulation experiments.
package main

import (
	"os"

	"schedlab/internal/cli"
)

func main() {
	app := cli.NewApp(os.Stdout)
	rootCmd := app.CreateRootCommand()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
