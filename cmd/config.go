package cmd

import (
	"fmt"
	"strconv"

	"github.com/egoavara/launchkit/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage launchkit configuration",
	Long: `Manage launchkit configuration settings.

Example:
  launchkit config show
  launchkit config set update.pollIntervalSeconds 86400`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  locale                       - Language setting
                                 Values: auto, en-US, ko-KR, etc.
  update.pollIntervalSeconds   - Minimum seconds between release feed polls
  update.defaultForceRecheck   - Poll on every check regardless of the interval
                                 Values: true, false

Example:
  launchkit config set locale ko-KR
  launchkit config set update.pollIntervalSeconds 86400`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Configuration:")
	fmt.Println("----------------------------------------")
	fmt.Printf("  locale: %s\n", cfg.Locale)
	fmt.Printf("  update.pollIntervalSeconds: %d\n", cfg.Update.PollIntervalSeconds)
	fmt.Printf("  update.defaultForceRecheck: %v\n", cfg.Update.DefaultForceRecheck)

	fmt.Println()
	fmt.Println("Locale:")
	if cfg.Locale == "auto" {
		fmt.Println("  auto: System locale is auto-detected")
	} else {
		fmt.Printf("  %s: Using fixed locale\n", cfg.Locale)
	}

	fmt.Println()
	fmt.Println("Update check:")
	fmt.Printf("  Release feed is polled at most once every %s\n", cfg.PollInterval())
	if cfg.Update.DefaultForceRecheck {
		fmt.Println("  defaultForceRecheck is on: every check polls the feed")
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	switch key {
	case "locale":
		if err := config.SetLocale(value); err != nil {
			return err
		}
		fmt.Printf("Locale set to '%s'. Restart launchkit to apply.\n", value)
		return nil
	case "update.pollIntervalSeconds":
		seconds, err := strconv.ParseInt(value, 10, 64)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid value '%s' for %s. Expected a positive number of seconds", value, key)
		}
		return config.SetPollIntervalSeconds(seconds)
	case "update.defaultForceRecheck":
		force, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value '%s' for %s. Valid values: true, false", value, key)
		}
		return config.SetDefaultForceRecheck(force)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
