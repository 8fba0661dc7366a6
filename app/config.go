package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/socioshare/socioshare/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	configCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump the configuration as JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration after the TOML file and the
SOCIOSHARE_CONFIG_JSON environment override have been applied.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			var out string

			if dumpJSON {
				out, err = config.DumpConfigJSON(c)
			} else {
				out, err = config.DumpConfig(c)
			}

			if err != nil {
				return err
			}

			fmt.Print(out)

			return nil
		},
	}
)
