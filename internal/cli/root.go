package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stratus",
	Short: "Multi-cloud provisioning simulator",
	Long: `Stratus simulates infrastructure provisioning across cloud providers.

It exposes an HTTP API that builds resource descriptors for aws, azure,
gcp, oracle and onprem without ever calling a real cloud. Useful for
teaching provisioning workflows and for integration-testing tools that
speak to a provisioning API.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(versionCmd)
}
