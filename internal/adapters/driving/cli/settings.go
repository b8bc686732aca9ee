package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CodeZobac/better.finder/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage launcher settings",
	Long: `View and configure the launcher: theme, result count, and which
search providers are enabled.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Set the UI theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTheme,
}

var settingsMaxResultsCmd = &cobra.Command{
	Use:   "max-results [n]",
	Short: "Set how many results the palette shows",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsMaxResults,
}

var settingsProviderCmd = &cobra.Command{
	Use:   "provider [name] [on|off]",
	Short: "Enable or disable a search provider",
	Long: `Enable or disable a search provider. Known names:

  files, applications, quick_actions, calculator, clipboard,
  bookmarks, recent_files

Changes take effect on the next launch.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsProvider,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsMaxResultsCmd)
	settingsCmd.AddCommand(settingsProviderCmd)
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

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[General]")
	cmd.Printf("  Hotkey: %s\n", settings.Hotkey)
	cmd.Printf("  Theme: %s\n", settings.Theme.Description())
	cmd.Printf("  Autostart: %s\n", yesNo(settings.Autostart))
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Max results: %d\n", settings.MaxResults)
	cmd.Printf("  Search delay: %dms\n", settings.SearchDelayMS)
	cmd.Println()

	cmd.Println("[Providers]")
	cmd.Printf("  Files: %s\n", yesNo(settings.Providers.Files))
	cmd.Printf("  Applications: %s\n", yesNo(settings.Providers.Applications))
	cmd.Printf("  Quick actions: %s\n", yesNo(settings.Providers.QuickActions))
	cmd.Printf("  Calculator: %s\n", yesNo(settings.Providers.Calculator))
	cmd.Printf("  Clipboard: %s\n", yesNo(settings.Providers.Clipboard))
	cmd.Printf("  Bookmarks: %s\n", yesNo(settings.Providers.Bookmarks))
	cmd.Printf("  Recent files: %s\n", yesNo(settings.Providers.RecentFiles))
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	theme := domain.Theme(args[0])
	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	cmd.Printf("Theme set to: %s\n", theme.Description())
	return nil
}

func runSettingsMaxResults(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a number: %q", args[0])
	}
	if err := settingsService.SetMaxResults(n); err != nil {
		return fmt.Errorf("failed to set max results: %w", err)
	}

	cmd.Printf("Max results set to: %d\n", n)
	return nil
}

func runSettingsProvider(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	name := args[0]
	var enabled bool
	switch args[1] {
	case "on", "true", "enabled":
		enabled = true
	case "off", "false", "disabled":
		enabled = false
	default:
		return fmt.Errorf("expected on or off, got %q", args[1])
	}

	if err := settingsService.SetProviderEnabled(name, enabled); err != nil {
		return fmt.Errorf("failed to toggle provider: %w", err)
	}

	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	cmd.Printf("Provider %s %s. Takes effect on next launch.\n", name, state)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
