// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mjklukowski/rofi-apps/internal/menu"
)

func newListCommand(app *App) *cobra.Command {
	var noCache bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the menu rows",
		Long: `Print the menu rows in rofi script-mode format.

The cached list is printed when the rule file and the number of entry files
are unchanged since it was written; otherwise the list is rebuilt and cached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), app, noCache)
		},
	}
	listCmd.Flags().BoolVar(&noCache, "no-cache", false, "rebuild the list even when the cache is valid")

	return listCmd
}

// runList writes the menu rows to stdout. Nothing else is written there.
func runList(ctx context.Context, app *App, noCache bool) error {
	result, diags, err := app.Lists.List(ctx, ListRequest{Settings: app.settings, NoCache: noCache})
	if err != nil {
		return err
	}
	app.Diagnostics.Render(ctx, diags, app.stderr, app.verbose)

	slog.Debug("list ready", "from_cache", result.FromCache, "reason", result.Reason)
	if result.FromCache {
		_, err = io.WriteString(app.stdout, result.Text)
		return err
	}
	return menu.Write(app.stdout, result.Entries)
}
