// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjklukowski/rofi-apps/internal/config"
	"github.com/mjklukowski/rofi-apps/internal/rule"
)

// newConfigCommand creates the `rofi-apps config` command tree.
// Subcommands that read the rule file use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the rule file",
		Long: `Inspect the rule file.

The first existing file is used:
  - $XDG_CONFIG_HOME/rofi-apps/config.json (default ~/.config/rofi-apps/config.json)
  - /etc/xdg/rofi-apps/config.json
  - /usr/share/rofi-apps/config.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the loaded rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the rule file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Locate(app.loadOptions())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(app.stdout, path)
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default rule file to the user config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		return err
	}

	w := app.stderr
	fmt.Fprintln(w, titleStyle.Render("Current Rules"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Rule file"), cfg.Path)

	writeSpecs(w, "blacklist", cfg.Specs.Blacklist, false)
	writeSpecs(w, "pinned", cfg.Specs.Pinned, true)
	writeSpecs(w, "customs", cfg.Specs.Customs, false)
	return nil
}

func writeSpecs(w io.Writer, key string, specs []rule.Spec, ranked bool) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render(key))
	if len(specs) == 0 {
		fmt.Fprintf(w, "  %s\n", subtleStyle.Render("(none)"))
		return
	}
	for i, s := range specs {
		prefix := "  -"
		if ranked {
			prefix = fmt.Sprintf("  %d.", i)
		}
		fmt.Fprintf(w, "%s %s\n", prefix, describeSpec(s))
	}
}

// describeSpec renders a rule on one line, e.g. name=/^Firefox$/ -> "Web".
func describeSpec(s rule.Spec) string {
	var parts []string
	if s.Name != nil {
		parts = append(parts, "name=/"+*s.Name+"/")
	}
	if s.Exec != nil {
		parts = append(parts, "exec=/"+*s.Exec+"/")
	}
	if len(parts) == 0 {
		parts = append(parts, subtleStyle.Render("(matches nothing)"))
	}
	desc := strings.Join(parts, " ")
	if s.NewName != nil {
		desc += " -> " + okStyle.Render(fmt.Sprintf("%q", *s.NewName))
	}
	return desc
}

func initConfig(app *App) error {
	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if !created {
		fmt.Fprintf(app.stderr, "%s %s already exists\n", warnStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(app.stderr, "%s Created default rules at %s\n", okStyle.Render("✓"), path)
	return nil
}
