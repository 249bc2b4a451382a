// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mjklukowski/rofi-apps/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the command tree around app. A bare invocation is a
// rofi script-mode call: it lists entries, or launches the one rofi reports
// as selected.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Application list and launcher for rofi script mode",
		Long: titleStyle.Render(config.AppName) + subtleStyle.Render(" - application list and launcher for rofi") + `

Lists the desktop entries found in the XDG applications directories,
filtered, pinned and renamed by the rules in config.json, in the row
format of rofi's script mode. When rofi reports a selection through
ROFI_RETV and ROFI_INFO, the selected entry is launched instead.

` + subtleStyle.Render("Examples:") + `
  rofi -show apps -modes "apps:rofi-apps"   Use as a rofi mode
  rofi-apps list --no-cache                 Rebuild and print the list
  rofi-apps launch firefox                  Launch an entry by identifier
  rofi-apps cache status                    Explain the cache decision`,
		// rofi passes the selected row text as an argument; ROFI_INFO is used instead.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadSettings()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRofi(cmd.Context(), app)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(app.stderr)
	rootCmd.SetErr(app.stderr)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "rule file to read instead of the XDG candidates")
	flags.String("cache-dir", "", "cache directory (default $XDG_CACHE_HOME/rofi-apps)")
	flags.StringSlice("search-dir", nil, "applications directory to scan, repeatable (default XDG data dirs)")
	flags.String("locale", "", "collation locale (default from LC_ALL, LC_COLLATE or LANG)")
	flags.String("launcher", "", `program that launches an identifier, or "exec" to run the Exec line`)
	flags.BoolP("verbose", "v", false, "enable verbose output")

	for key, flag := range map[string]string{
		config.KeyConfig:     "config",
		config.KeyCacheDir:   "cache-dir",
		config.KeySearchDirs: "search-dir",
		config.KeyLocale:     "locale",
		config.KeyLauncher:   "launcher",
		config.KeyVerbose:    "verbose",
	} {
		// Unchanged flags fall through to the environment and defaults.
		if err := app.viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			slog.Warn("failed to bind flag", "flag", flag, "error", err)
		}
	}

	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newLaunchCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newCacheCommand(app))
	rootCmd.AddCommand(newVersionCommand(app))

	return rootCmd
}

// Execute builds the production App and runs the root command. It is called
// by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		renderError(os.Stderr, err, false)
		os.Exit(int(exitCodeFor(err)))
	}

	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(commandArgs(app.env, os.Args[1:]))
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			renderError(w, err, app.verbose)
		}),
	); err != nil {
		code := exitCodeFor(err)
		slog.Debug("exiting", "status", code.Label())
		os.Exit(int(code))
	}
}

// runRofi dispatches a bare invocation on rofi's script-mode environment.
func runRofi(ctx context.Context, app *App) error {
	inv, err := invocationFromEnv(app.env)
	if err != nil {
		return fmt.Errorf("failed to read rofi environment: %w", err)
	}
	slog.Debug("rofi invocation", "mode", inv.Mode, "target", inv.Target)

	if inv.Mode == ModeLaunch {
		return runLaunch(ctx, app, inv.Target)
	}
	return runList(ctx, app, false)
}
