package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recharges-service",
	Short: "Recharge request management service",
	Long:  "HTTP service for recharge plans, payment transactions and admin notifications.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
