// SPDX-License-Identifier: MPL-2.0

package entrytest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mjklukowski/rofi-apps/internal/testutil"
)

type (
	// Option configures a desktop file fixture.
	Option func(*fixture)

	fixture struct {
		kind      string
		name      string
		exec      string
		icon      string
		noDisplay bool
		extra     []string
	}
)

// WriteDesktopFile writes an Application desktop entry at dir/rel and returns
// its path. Name and Exec default to the file stem.
func WriteDesktopFile(t testing.TB, dir, rel string, opts ...Option) string {
	t.Helper()

	stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	f := &fixture{kind: "Application", name: stem, exec: stem}
	for _, opt := range opts {
		opt(f)
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=" + f.kind + "\n")
	if f.name != "" {
		b.WriteString("Name=" + f.name + "\n")
	}
	b.WriteString("Exec=" + f.exec + "\n")
	if f.icon != "" {
		b.WriteString("Icon=" + f.icon + "\n")
	}
	if f.noDisplay {
		b.WriteString("NoDisplay=true\n")
	}
	for _, line := range f.extra {
		b.WriteString(line + "\n")
	}

	path := filepath.Join(dir, filepath.FromSlash(rel))
	testutil.MustWriteFile(t, path, b.String())
	return path
}

// WithName sets Name. An empty name omits the key.
func WithName(name string) Option {
	return func(f *fixture) { f.name = name }
}

// WithExec sets Exec.
func WithExec(exec string) Option {
	return func(f *fixture) { f.exec = exec }
}

// WithIcon sets Icon.
func WithIcon(icon string) Option {
	return func(f *fixture) { f.icon = icon }
}

// WithNoDisplay sets NoDisplay=true.
func WithNoDisplay() Option {
	return func(f *fixture) { f.noDisplay = true }
}

// WithType overrides Type=Application.
func WithType(kind string) Option {
	return func(f *fixture) { f.kind = kind }
}

// WithLine appends a raw line to the group.
func WithLine(line string) Option {
	return func(f *fixture) { f.extra = append(f.extra, line) }
}
