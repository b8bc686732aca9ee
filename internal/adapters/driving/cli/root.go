// Package cli wires the launcher's services into cobra commands. The
// root command opens the interactive palette; subcommands expose the
// same engine for scripting and integration.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodeZobac/better.finder/internal/adapters/driven/config/file"
	platformexec "github.com/CodeZobac/better.finder/internal/adapters/driven/platform/exec"
	"github.com/CodeZobac/better.finder/internal/adapters/driven/storage/jsonfile"
	"github.com/CodeZobac/better.finder/internal/adapters/driven/storage/sqlite"
	"github.com/CodeZobac/better.finder/internal/core/domain"
	"github.com/CodeZobac/better.finder/internal/core/ports/driven"
	"github.com/CodeZobac/better.finder/internal/core/ports/driving"
	"github.com/CodeZobac/better.finder/internal/core/services"
	"github.com/CodeZobac/better.finder/internal/logger"
	"github.com/CodeZobac/better.finder/internal/providers/appsearch"
	"github.com/CodeZobac/better.finder/internal/providers/bookmarks"
	"github.com/CodeZobac/better.finder/internal/providers/calculator"
	clipboardprovider "github.com/CodeZobac/better.finder/internal/providers/clipboard"
	"github.com/CodeZobac/better.finder/internal/providers/filesearch"
	"github.com/CodeZobac/better.finder/internal/providers/quickaction"
	"github.com/CodeZobac/better.finder/internal/providers/recentfiles"
	"github.com/CodeZobac/better.finder/internal/providers/websearch"
)

var version = "0.1.0"

// Services the commands run against. Set by ensureServices at startup,
// swapped directly in tests.
var (
	engineService   driving.SearchEngine
	settingsService driving.SettingsService
)

// registeredProviders holds providers for lifecycle management.
var registeredProviders []driven.SearchProvider

// shutdownFuncs release resources acquired during bootstrap.
var shutdownFuncs []func()

var rootCmd = &cobra.Command{
	Use:   "finder",
	Short: "A quick launcher for files, apps, and actions",
	Long: `better.finder is a keyboard-driven quick launcher.

Type to search across installed applications, files, browser bookmarks,
clipboard history, and recent documents. Queries that look like maths are
calculated inline, and anything else falls back to a web search.

Running with no arguments opens the interactive palette.`,
	SilenceUsage:      true,
	PersistentPreRunE: ensureServices,
	RunE:              runTUI,
}

// Execute runs the root command and releases resources on the way out.
func Execute() error {
	defer shutdown()
	return rootCmd.Execute()
}

// ensureServices builds the full service graph on first use. Tests
// preconfigure the package-level services and skip bootstrap entirely.
func ensureServices(cmd *cobra.Command, _ []string) error {
	if engineService != nil {
		return nil
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	platform := platformexec.New()
	engine := services.NewSearchEngine(platform)

	// The recent-files store doubles as the access tracker. Losing it
	// degrades recency features but never blocks the launcher.
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("Recent files store unavailable: %v", err)
	} else {
		engine.SetFileAccessTracker(store)
		shutdownFuncs = append(shutdownFuncs, func() {
			if err := store.Close(); err != nil {
				logger.Warn("Closing recent files store: %v", err)
			}
		})
	}

	registerProviders(cmd.Context(), engine, platform, store, settings)

	engineService = engine
	return nil
}

// registerProviders builds and registers every provider the settings
// toggles allow. A provider that fails to initialise is still registered:
// it answers what it can and recovers on its own refresh cycle.
func registerProviders(
	ctx context.Context,
	engine *services.SearchEngine,
	platform driven.PlatformServices,
	store *sqlite.Store,
	settings *domain.AppSettings,
) {
	if settings.Providers.Calculator {
		registeredProviders = append(registeredProviders, calculator.New(platform))
	}
	if settings.Providers.QuickActions {
		registeredProviders = append(registeredProviders, quickaction.New(platform))
	}

	// Web search is the always-on fallback and has no toggle.
	registeredProviders = append(registeredProviders, websearch.New(platform))

	if settings.Providers.RecentFiles && store != nil {
		registeredProviders = append(registeredProviders, recentfiles.New(store, platform))
	}

	if settings.Providers.Files {
		index := platformexec.NewLocateIndex()
		if index.Available() {
			registeredProviders = append(registeredProviders, filesearch.New(index, platform))
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				logger.Warn("No home directory, skipping file search: %v", err)
			} else {
				registeredProviders = append(registeredProviders, filesearch.NewFallback(home, platform))
			}
		}
	}

	if settings.Providers.Applications {
		registeredProviders = append(registeredProviders, appsearch.New(platformexec.NewAppScanner(), platform))
	}
	if settings.Providers.Bookmarks {
		registeredProviders = append(registeredProviders, bookmarks.New(platform))
	}

	if settings.Providers.Clipboard {
		clipStore, err := jsonfile.NewClipboardStore("")
		if err != nil {
			logger.Warn("Clipboard history store unavailable: %v", err)
		} else {
			registeredProviders = append(registeredProviders, clipboardprovider.New(platform, clipStore))
		}
	}

	for _, provider := range registeredProviders {
		if err := provider.Initialize(ctx); err != nil {
			logger.Warn("Provider %q failed to initialise: %v", provider.Name(), err)
		}
		engine.RegisterProvider(provider)
	}
}

// shutdown flushes provider state and closes stores.
func shutdown() {
	ctx := context.Background()
	for _, provider := range registeredProviders {
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn("Provider %q shutdown: %v", provider.Name(), err)
		}
	}
	registeredProviders = nil

	for _, fn := range shutdownFuncs {
		fn()
	}
	shutdownFuncs = nil
}
