// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mjklukowski/rofi-apps/internal/entry"
)

// entryPattern matches entry-description files at any depth.
const entryPattern = "**/*" + entry.Extension

type (
	// Collector walks the search directories and parses every entry file.
	Collector struct {
		dirs   []string
		parser entry.DescriptorParser
	}

	// Option configures a Collector.
	Option func(*Collector)

	// Result bundles collected entries with non-fatal diagnostics.
	Result struct {
		// Entries are in scan order: directory precedence first, then the
		// lexical walk order inside each directory.
		Entries []entry.Entry
		// Diagnostics lists skipped files and dropped icons.
		Diagnostics []Diagnostic
	}
)

// New creates a Collector that parses files with parser.
func New(parser entry.DescriptorParser, opts ...Option) *Collector {
	c := &Collector{parser: parser}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSearchDirs sets the search directories, highest precedence first.
// Relative directories are made absolute so identifiers can be derived from
// the absolute paths the walk produces.
func WithSearchDirs(dirs ...string) Option {
	return func(c *Collector) {
		c.dirs = make([]string, 0, len(dirs))
		for _, dir := range dirs {
			if abs, err := filepath.Abs(dir); err == nil {
				dir = abs
			}
			c.dirs = append(c.dirs, dir)
		}
	}
}

// SearchDirs returns the configured search directories.
func (c *Collector) SearchDirs() []string {
	return append([]string(nil), c.dirs...)
}

// Collect parses every entry file below the search directories. A file that
// fails to parse is recorded as a diagnostic and skipped. An icon of unknown
// kind is recorded the same way and dropped while the entry is kept. Callers
// decide how diagnostics are rendered.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	result := &Result{}

	for _, dir := range c.dirs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("collect entries canceled: %w", err)
		}

		paths, diag := Files(dir)
		if diag != nil {
			result.Diagnostics = append(result.Diagnostics, *diag)
			continue
		}

		for _, path := range paths {
			e, diags := c.collectFile(path)
			result.Diagnostics = append(result.Diagnostics, diags...)
			if e != nil {
				result.Entries = append(result.Entries, *e)
			}
		}
	}

	return result, nil
}

func (c *Collector) collectFile(path string) (*entry.Entry, []Diagnostic) {
	desc, err := c.parser.Parse(path)
	if err != nil {
		return nil, []Diagnostic{NewDiagnosticWithCause(SeverityWarning, CodeEntryParseSkipped,
			"skipping entry file that failed to parse", path, err)}
	}

	var diags []Diagnostic
	icon, err := desc.Icon.Resolve()
	if err != nil {
		diags = append(diags, NewDiagnosticWithCause(SeverityWarning, CodeIconUnresolved,
			"dropping icon of unknown kind", path, err))
		icon = ""
	}

	return &entry.Entry{
		Path:      path,
		NoDisplay: desc.NoDisplay,
		Name:      desc.Name,
		Exec:      desc.Exec,
		Icon:      icon,
		ID:        entry.Identifier(path, c.dirs),
	}, diags
}

// Count returns the total number of entry files below all search directories.
// A directory listed twice is counted twice. Unreadable directories count as
// empty.
func (c *Collector) Count() int {
	total := 0
	for _, dir := range c.dirs {
		paths, _ := Files(dir)
		total += len(paths)
	}
	return total
}

// Files returns the absolute paths of the entry files below dir in walk order.
// A missing directory yields no files and no diagnostic.
func Files(dir string) ([]string, *Diagnostic) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		d := NewDiagnosticWithCause(SeverityWarning, CodeSearchDirUnreadable,
			"failed to resolve search directory", dir, err)
		return nil, &d
	}

	info, err := os.Stat(absDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s is not a directory", absDir)
		}
		d := NewDiagnosticWithCause(SeverityWarning, CodeSearchDirUnreadable,
			"skipping unreadable search directory", absDir, err)
		return nil, &d
	}

	matches, err := doublestar.Glob(os.DirFS(absDir), entryPattern, doublestar.WithFilesOnly())
	if err != nil {
		d := NewDiagnosticWithCause(SeverityWarning, CodeSearchDirUnreadable,
			"failed to walk search directory", absDir, err)
		return nil, &d
	}

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(absDir, filepath.FromSlash(m))
	}
	return paths, nil
}
