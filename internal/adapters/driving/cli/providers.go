package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered search providers",
	Long: `Lists every registered search provider with its priority and whether it
is currently enabled. Toggle providers with 'finder settings set'.`,
	RunE: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, _ []string) error {
	if engineService == nil {
		return errors.New("search engine not configured")
	}

	providers := engineService.Providers()
	if len(providers) == 0 {
		cmd.Println("No providers registered.")
		return nil
	}

	cmd.Printf("%-24s %-10s %s\n", "NAME", "PRIORITY", "ENABLED")
	for _, info := range providers {
		enabled := "yes"
		if !info.Enabled {
			enabled = "no"
		}
		cmd.Printf("%-24s %-10d %s\n", info.Name, info.Priority, enabled)
	}

	return nil
}
