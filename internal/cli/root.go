// Package cli wires the cobra commands of the product-service binary.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "product-service",
	Short:         "CRUD service over a single products table",
	Long:          "product-service stores free-form product records keyed by productID and serves them over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
