// SPDX-License-Identifier: MPL-2.0

package config

import (
	"github.com/mjklukowski/rofi-apps/internal/rule"
)

type (
	// Config is the loaded rule file. It is not modified after Load returns.
	Config struct {
		// Path is the file the rules were read from. Its modification time is
		// part of the cache validity token.
		Path string
		// Blacklist hides every entry matched by any rule.
		Blacklist rule.Set
		// Pinned places matching entries first; the index of the first
		// matching rule is the entry's rank.
		Pinned rule.Set
		// Customs renames unpinned entries; the first matching rule wins.
		Customs rule.Set
		// Specs keeps the declarative form for display.
		Specs Specs
	}

	// Specs is the decoded, uncompiled rule file.
	Specs struct {
		Blacklist []rule.Spec `json:"blacklist"`
		Pinned    []rule.Spec `json:"pinned"`
		Customs   []rule.Spec `json:"customs"`
	}
)
