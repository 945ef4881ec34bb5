package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage flightnotifier configuration",
}

func init() {
	configCmd.AddCommand(configNewCmd)
	configNewCmd.Flags().BoolVar(&configNewAsEnvFlag, "env", false, "print the configuration as environment variables")
}
