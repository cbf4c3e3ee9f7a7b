package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logistics",
		Short: "Logistics - deterministic production and transport simulation",
		Long: `Logistics runs a tick-based production and logistics simulation:
production facilities convert inputs into outputs over time, and
transporters haul goods between facilities to satisfy unmet demand.

Examples:
  logistics simulate run --world world.yaml --ticks 500
  logistics simulate run --world world.yaml --real-time
  logistics catalog show --world world.yaml
  logistics events list --run <run-id>`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/logistics)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewEventsCommand())

	return rootCmd
}
