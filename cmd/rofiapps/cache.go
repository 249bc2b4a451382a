// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjklukowski/rofi-apps/internal/cache"
	"github.com/mjklukowski/rofi-apps/internal/config"
)

func newCacheCommand(app *App) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the cached list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Explain whether the cached list would be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCacheStatus(app)
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the cached list and its token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cache.NewManager(app.settings.CacheDir, nil).Clear(); err != nil {
				return err
			}
			fmt.Fprintf(app.stderr, "%s Cleared %s\n", okStyle.Render("✓"), app.settings.CacheDir)
			return nil
		},
	})

	return cacheCmd
}

func showCacheStatus(app *App) error {
	cfgPath, err := config.Locate(app.loadOptions())
	if err != nil {
		return err
	}

	manager := cache.NewManager(app.settings.CacheDir, newCollector(nil, app.settings))
	status, err := manager.Check(cfgPath)
	if err != nil {
		return err
	}

	w := app.stderr
	state := okStyle.Render("valid")
	if !status.Valid {
		state = warnStyle.Render("stale")
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", keyStyle.Render("Cache"), state, status.Reason)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Directory"), manager.Dir())
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Rule file"), cfgPath)
	fmt.Fprintf(w, "%s: mtime %s, %d entry files\n", keyStyle.Render("Current"),
		status.Current.ConfigMtime, status.Current.Count)
	if status.Stored != nil {
		fmt.Fprintf(w, "%s: mtime %s, %d entry files\n", keyStyle.Render("Stored"),
			status.Stored.ConfigMtime, status.Stored.Count)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Stored"), subtleStyle.Render("(none)"))
	}
	return nil
}
