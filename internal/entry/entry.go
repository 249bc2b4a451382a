// SPDX-License-Identifier: MPL-2.0

package entry

import (
	"path/filepath"
	"strings"
)

// Extension is the file extension of entry-description files.
const Extension = ".desktop"

type (
	// Entry is one resolved application. Entries are rebuilt on every run and
	// only outlive an invocation in the cache's serialized form.
	Entry struct {
		// Path is the absolute path of the entry-description file.
		Path string
		// NoDisplay reports that the entry asked not to be shown in menus.
		NoDisplay bool
		// Name is the display name; a rename rule may replace the parser's name.
		Name string
		// Exec is the command line. It is only used for rule matching.
		Exec string
		// Icon is a file path or a themed icon name. Empty means absent.
		Icon string
		// ID is the identifier derived from Path and the search directories.
		ID string
	}

	// List is the externally visible ordering: pinned entries in rank order
	// followed by the alphabetically sorted unpinned entries.
	List []Entry
)

// Filename returns the final path component, the key used for deduplication.
func (e Entry) Filename() string {
	return filepath.Base(e.Path)
}

// Identifier derives the launch identifier for path. The first directory in
// dirs that is an ancestor of path is used as the root; the path relative to it,
// without extension, has its separators replaced by "-". When no directory is an
// ancestor the bare file stem is returned.
//
//	Identifier("/usr/share/applications/org/example/app.desktop",
//	    []string{"/usr/share/applications"}) == "org-example-app"
func Identifier(path string, dirs []string) string {
	for _, dir := range dirs {
		rel, ok := relativeTo(dir, path)
		if !ok {
			continue
		}
		rel = strings.TrimSuffix(rel, filepath.Ext(rel))
		return strings.Join(strings.Split(filepath.ToSlash(rel), "/"), "-")
	}
	return stem(path)
}

func relativeTo(dir, path string) (string, bool) {
	if dir == "" {
		return "", false
	}
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
