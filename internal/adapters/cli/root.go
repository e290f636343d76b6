package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "everoutes",
		Short: "EVE Routes CLI - Find profitable trade routes between hubs",
		Long: `EVE Routes CLI analyzes live market data from the EVE Online ESI API
and ranks the most profitable items to haul between major trade hubs.

Examples:
  everoutes scan --from jita --to dodixie
  everoutes scan --from amarr --to rens --cargo 60000 --min-profit 500000
  everoutes stations`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewScanCommand())
	rootCmd.AddCommand(NewStationsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
