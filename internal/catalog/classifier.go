// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"

	"github.com/mjklukowski/rofi-apps/internal/config"
	"github.com/mjklukowski/rofi-apps/internal/entry"
)

type (
	// Classifier applies the rule file to collected entries.
	Classifier struct {
		cfg      *config.Config
		collator *collate.Collator
	}

	// Option configures a Classifier.
	Option func(*Classifier)

	// pinSlots holds pinned entries by rank. A rank nobody matched is an
	// empty slot until compact. Entries sharing a rank keep scan order.
	pinSlots [][]entry.Entry
)

// New creates a Classifier for cfg that sorts with the root collation unless
// WithLocale is given.
func New(cfg *config.Config, opts ...Option) *Classifier {
	c := &Classifier{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.collator == nil {
		c.collator = NewCollator("")
	}
	return c
}

// WithLocale sorts unpinned entries with the collation of locale.
func WithLocale(locale string) Option {
	return func(c *Classifier) {
		c.collator = NewCollator(locale)
	}
}

// Classify returns the final list for entries given in scan order.
func (c *Classifier) Classify(entries []entry.Entry) entry.List {
	var (
		pinned   pinSlots
		unpinned []entry.Entry
		accepted = make(map[string]bool, len(entries))
	)

	for i := range entries {
		e := entries[i]

		if e.NoDisplay || c.cfg.Blacklist.Any(&e) {
			continue
		}

		filename := e.Filename()
		if accepted[filename] {
			continue
		}
		accepted[filename] = true

		if rank := c.cfg.Pinned.First(&e); rank >= 0 {
			pinned.place(rank, e)
			continue
		}

		c.rename(&e)
		unpinned = append(unpinned, e)
	}

	slices.SortStableFunc(unpinned, func(a, b entry.Entry) int {
		return c.collator.CompareString(a.Name, b.Name)
	})

	list := pinned.compact()
	return append(list, unpinned...)
}

// rename applies the first matching customs rule. A matching rule without
// newName still ends the search.
func (c *Classifier) rename(e *entry.Entry) {
	idx := c.cfg.Customs.First(e)
	if idx < 0 {
		return
	}
	if name, ok := c.cfg.Customs[idx].NewName(); ok {
		e.Name = name
	}
}

// place puts e into the slot for rank, growing the slots as needed.
func (s *pinSlots) place(rank int, e entry.Entry) {
	for len(*s) <= rank {
		*s = append(*s, nil)
	}
	(*s)[rank] = append((*s)[rank], e)
}

// compact returns the occupied slots in ascending rank order.
func (s pinSlots) compact() entry.List {
	var list entry.List
	for _, slot := range s {
		list = append(list, slot...)
	}
	return list
}
