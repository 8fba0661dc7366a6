package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/socioshare/socioshare/internal/client"
)

func init() { //nolint: gochecknoinits
	settingsCmd.PersistentFlags().StringVar(&settingsURL, "url", "http://localhost:3000", "Base URL of the SocioShare service")
	settingsCmd.PersistentFlags().StringVar(&settingsShop, "shop", "", "Shop domain to operate on")

	settingsSetCmd.Flags().StringVar(&setStyle, "button-style", "", "Button style (icon-only, icon-text, text-only)")
	settingsSetCmd.Flags().StringVar(&setSize, "button-size", "", "Button size (small, medium, large)")
	settingsSetCmd.Flags().StringSliceVar(&togglePlatforms, "toggle-platform", nil, "Platform IDs to toggle on or off")

	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

var (
	settingsURL     string
	settingsShop    string
	setStyle        string
	setSize         string
	togglePlatforms []string

	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Read or update a shop's sharing-button settings over the API",
	}

	settingsGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Fetch the resolved settings document for a shop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := client.New(settingsURL, settingsShop)

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			if err := c.Load(ctx); err != nil {
				return err
			}

			out, err := json.MarshalIndent(c.Document(), "", "  ")
			if err != nil {
				return err
			}

			fmt.Println(string(out))

			return nil
		},
	}

	settingsSetCmd = &cobra.Command{
		Use:   "set",
		Short: "Update settings fields for a shop and save them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := client.New(settingsURL, settingsShop)

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			if err := c.Load(ctx); err != nil {
				return err
			}

			if setStyle != "" {
				c.SetButtonStyle(setStyle)
			}

			if setSize != "" {
				c.SetButtonSize(setSize)
			}

			for _, p := range togglePlatforms {
				c.TogglePlatform(p)
			}

			if err := c.Save(ctx); err != nil {
				return err
			}

			fmt.Println("settings saved")

			return nil
		},
	}
)
