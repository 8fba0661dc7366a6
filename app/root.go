// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "socioshare",
	Short: "SocioShare is the admin service for the SocioShare storefront extension",
	Long: `SocioShare is the admin service for the SocioShare storefront extension.
It serves the merchant-facing settings page and persists per-shop
sharing-button configuration (platforms, button style, button size).`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
