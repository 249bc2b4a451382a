// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

func newLaunchCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <path-or-identifier>",
		Short: "Launch a desktop entry",
		Long: `Launch a desktop entry by its file path or its identifier.

The identifier is the entry file's path below its applications directory with
'/' replaced by '-' and the .desktop suffix removed, e.g. org.gnome.Terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd.Context(), app, args[0])
		},
	}
}

func runLaunch(ctx context.Context, app *App, target string) error {
	slog.Debug("launching", "target", target, "launcher", app.settings.Launcher)
	return app.Launches.Launch(ctx, LaunchRequest{Settings: app.settings, Target: target})
}
