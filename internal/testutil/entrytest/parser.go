// SPDX-License-Identifier: MPL-2.0

package entrytest

import (
	"github.com/mjklukowski/rofi-apps/internal/entry"
)

type (
	// CountingParser wraps a DescriptorParser and records every parsed path.
	CountingParser struct {
		inner  entry.DescriptorParser
		parsed []string
	}

	// StaticParser returns fixed descriptors keyed by path. Paths without a
	// descriptor fail with *entry.ParseError.
	StaticParser map[string]*entry.Descriptor
)

// NewCountingParser wraps inner.
func NewCountingParser(inner entry.DescriptorParser) *CountingParser {
	return &CountingParser{inner: inner}
}

// Parse implements entry.DescriptorParser.
func (p *CountingParser) Parse(path string) (*entry.Descriptor, error) {
	p.parsed = append(p.parsed, path)
	return p.inner.Parse(path)
}

// Calls returns how many files were parsed.
func (p *CountingParser) Calls() int { return len(p.parsed) }

// Parsed returns the parsed paths in call order.
func (p *CountingParser) Parsed() []string {
	return append([]string(nil), p.parsed...)
}

// Reset forgets recorded calls.
func (p *CountingParser) Reset() { p.parsed = nil }

// Parse implements entry.DescriptorParser.
func (p StaticParser) Parse(path string) (*entry.Descriptor, error) {
	desc, ok := p[path]
	if !ok {
		return nil, &entry.ParseError{Path: path, Reason: "no fixture"}
	}
	d := *desc
	return &d, nil
}
