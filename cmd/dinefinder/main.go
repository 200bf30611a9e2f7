package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dinefinder/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:   "dinefinder",
		Short: "Nearby restaurant search API",
		Long: `dinefinder resolves a location (coordinates or a free-text address),
ranks the restaurant catalog by great-circle distance and returns the closest matches.

Configuration is read from config/<ENV>.yaml (ENV defaults to "local").`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running without a subcommand starts the server.
		RunE: serve.RunE,
	}

	root.AddCommand(serve, newSeedCmd())
	return root
}
