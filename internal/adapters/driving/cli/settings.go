package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the dictionary endpoint and search pacing.

Settings are stored in config.toml inside the config directory
(~/.keyword unless --config-dir is given).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting and save it.

Available keys:
  oracle.base_url        dictionary lookup endpoint
  oracle.user_agent      User-Agent sent with every lookup
  oracle.min_spacing_ms  minimum milliseconds between any two lookups
  search.pacing_ms       milliseconds between lookups of one search`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 || settingsService == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return settingsService.Keys(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	styles := stylesFor(cmd.OutOrStdout())

	cmd.Println(styles.Title.Render("Current Settings"))
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Oracle]")
	cmd.Printf("  Base URL: %s\n", settings.Oracle.BaseURL)
	cmd.Printf("  User Agent: %s\n", settings.Oracle.UserAgent)
	cmd.Printf("  Min Spacing: %s\n", describeDelay(settings.Oracle.MinSpacing))
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Pacing: %s\n", describeDelay(settings.Search.Pacing))
	cmd.Println()

	cmd.Println(styles.Muted.Render("Keys: " + strings.Join(settingsService.Keys(), ", ")))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

// describeDelay renders a delay setting, where zero disables it.
func describeDelay(d time.Duration) string {
	if d == 0 {
		return "off"
	}
	return d.String()
}
