package main

import (
	"os"

	"github.com/greplit/greplit/internal/app"
	"github.com/spf13/cobra"
)

var (
	// Version is injected at build time
	Version = "dev"
	// Build is injected at build time
	Build = "unknown"
	// ProgramName is injected at build time
	ProgramName = "greplit"
)

func main() {
	runMain(os.Args, os.Exit)
}

func runMain(args []string, exit func(int)) {
	if err := Execute(Version, Build, ProgramName, args[1:]); err != nil {
		exit(1)
	}
}

// Execute is the entry point for the CLI, extracted for testing
func Execute(version, build, programName string, args []string) error {
	rootCmd := &cobra.Command{
		Use:     programName + " <query> <file>",
		Short:   "Print lines of a file that contain a query string",
		Long:    "Reads a file fully into memory and prints every line containing the query, optionally case-insensitively.",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithArgs(cmd, programName, args)
		},
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	app.RegisterFlags(rootCmd.Flags())
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

func runWithArgs(cmd *cobra.Command, programName string, args []string) error {
	// Cobra has already stripped flags; rebuild the positional argument
	// list the Config builder expects, program name first.
	argv := append([]string{programName}, args...)
	return app.RunWithDeps(cmd.Context(), app.DefaultRunParams(), cmd.Flags(), argv)
}
