// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mjklukowski/rofi-apps/internal/config"
	"github.com/mjklukowski/rofi-apps/internal/discovery"
	"github.com/mjklukowski/rofi-apps/internal/entry"
	"github.com/mjklukowski/rofi-apps/internal/issue"
	"github.com/mjklukowski/rofi-apps/internal/launch"
)

// launchService implements LaunchService with the launcher named in settings.
type launchService struct {
	parser entry.DescriptorParser
	start  launch.StartFunc
}

// Launch implements LaunchService. Launch failures are returned unchanged
// apart from a catalog hint for the CLI layer.
func (s *launchService) Launch(ctx context.Context, req LaunchRequest) error {
	collector := newCollector(s.parser, req.Settings)
	target := targetFor(req.Target, collector.SearchDirs())

	err := s.launcher(req.Settings, collector).Launch(ctx, target)
	switch {
	case errors.Is(err, discovery.ErrEntryNotFound):
		return withIssue(err, issue.EntryNotFoundId)
	case errors.Is(err, exec.ErrNotFound):
		return withIssue(err, issue.LauncherNotFoundId)
	default:
		return withIssue(err, issue.LaunchFailedId)
	}
}

func (s *launchService) launcher(settings *config.Settings, collector *discovery.Collector) launch.Launcher {
	if settings.Launcher == config.LauncherExec {
		parser := s.parser
		if parser == nil {
			parser = entry.NewDesktopParser(settings.Locale)
		}
		return launch.NewExec(collector, parser, s.start)
	}
	return launch.NewCommand(settings.Launcher, s.start)
}

// targetFor accepts either an entry file path, as rofi passes back in
// ROFI_INFO, or an identifier.
func targetFor(arg string, dirs []string) launch.Target {
	if filepath.IsAbs(arg) && strings.HasSuffix(arg, entry.Extension) {
		return launch.Target{ID: entry.Identifier(arg, dirs), Path: arg}
	}
	return launch.Target{ID: arg}
}
