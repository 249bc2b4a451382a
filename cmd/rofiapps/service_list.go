// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"log/slog"

	"github.com/mjklukowski/rofi-apps/internal/cache"
	"github.com/mjklukowski/rofi-apps/internal/catalog"
	"github.com/mjklukowski/rofi-apps/internal/config"
	"github.com/mjklukowski/rofi-apps/internal/discovery"
	"github.com/mjklukowski/rofi-apps/internal/entry"
	"github.com/mjklukowski/rofi-apps/internal/issue"
	"github.com/mjklukowski/rofi-apps/internal/menu"
	"github.com/mjklukowski/rofi-apps/pkg/types"
)

// listService implements ListService: rule file, then the cache fast path,
// then collection, classification and formatting.
type listService struct {
	config ConfigProvider
	parser entry.DescriptorParser
}

// List implements ListService.
func (s *listService) List(ctx context.Context, req ListRequest) (ListResult, []discovery.Diagnostic, error) {
	cfg, err := s.config.Load(ctx, loadOptionsFor(req.Settings))
	if err != nil {
		return ListResult{}, nil, err
	}

	collector := newCollector(s.parser, req.Settings)
	manager := cache.NewManager(req.Settings.CacheDir, collector)

	status, err := manager.Check(cfg.Path)
	if err != nil {
		return ListResult{}, nil, err
	}

	if status.Valid && !req.NoCache {
		text, loadErr := manager.Load()
		if loadErr == nil {
			slog.Debug("serving cached list", "path", manager.PayloadPath())
			return ListResult{Text: text, FromCache: true, Reason: status.Reason}, nil, nil
		}
		slog.Warn("cached list unreadable, rebuilding", "error", loadErr)
	} else {
		slog.Debug("rebuilding list", "reason", status.Reason, "no_cache", req.NoCache)
	}

	collected, err := collector.Collect(ctx)
	if err != nil {
		return ListResult{}, nil, err
	}

	list := catalog.New(cfg, catalog.WithLocale(req.Settings.Locale)).Classify(collected.Entries)
	text := menu.Format(list)

	if err := manager.Store(status.Current, text); err != nil {
		slog.Warn("failed to write cache; the next run rebuilds the list",
			"dir", manager.Dir(), "error", err, "issue", issue.CacheWriteFailedId)
	}

	return ListResult{Text: text, Entries: list, Reason: status.Reason}, collected.Diagnostics, nil
}

// newCollector builds the collector for settings. A nil parser selects the
// desktop-entry parser for the configured locale.
func newCollector(parser entry.DescriptorParser, settings *config.Settings) *discovery.Collector {
	if parser == nil {
		parser = entry.NewDesktopParser(settings.Locale)
	}
	return discovery.New(parser, discovery.WithSearchDirs(settings.SearchDirs...))
}

func loadOptionsFor(settings *config.Settings) config.LoadOptions {
	if settings == nil {
		return config.LoadOptions{}
	}
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(settings.ConfigFile)}
}

