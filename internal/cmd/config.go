package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storekit/shopctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit shopctl configuration",
	Long: `Manage the shopctl configuration stored at ~/.shopctl/config.yaml.

Examples:
  shopctl config view
  shopctl config get api_url
  shopctl config set api_url https://shop.example.com
  shopctl config path`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("api_url: %s\n", app.Config.APIURL)
		fmt.Printf("format: %s\n", app.Config.Format)
		fmt.Printf("log_level: %s\n", app.Config.LogLevel)
		fmt.Printf("log_format: %s\n", app.Config.LogFormat)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := configValue(&app.Config, args[0])
		if err != nil {
			return err
		}
		fmt.Println(*value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Re-read the file so flag overrides are not written back.
		cfg, err := config.Load(app.HomeDir)
		if err != nil {
			return err
		}

		value, err := configValue(&cfg, args[0])
		if err != nil {
			return err
		}
		*value = args[1]

		if err := cfg.Save(app.HomeDir); err != nil {
			return err
		}

		fmt.Printf("Set %s.\n", args[0])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.Path(app.HomeDir))
		return nil
	},
}

func configValue(cfg *config.Config, key string) (*string, error) {
	switch key {
	case "api_url":
		return &cfg.APIURL, nil
	case "format":
		return &cfg.Format, nil
	case "log_level":
		return &cfg.LogLevel, nil
	case "log_format":
		return &cfg.LogFormat, nil
	default:
		return nil, fmt.Errorf("unknown config key: %s (known: api_url, format, log_level, log_format)", key)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}
