// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"

	"github.com/mjklukowski/rofi-apps/internal/entry"
)

// ErrEntryNotFound is the sentinel wrapped by EntryNotFoundError.
var ErrEntryNotFound = errors.New("entry not found")

// EntryNotFoundError reports an identifier that no entry file maps to.
type EntryNotFoundError struct {
	ID   string
	Dirs []string
}

// Error implements the error interface.
func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("no entry with identifier %q in %d search directories", e.ID, len(e.Dirs))
}

// Unwrap returns ErrEntryNotFound.
func (e *EntryNotFoundError) Unwrap() error { return ErrEntryNotFound }

// Resolve returns the path of the first entry file, in precedence order,
// whose identifier is id. Files shadowed by an earlier file with the same
// identifier are never returned.
func (c *Collector) Resolve(id string) (string, error) {
	for _, dir := range c.dirs {
		paths, _ := Files(dir)
		for _, path := range paths {
			if entry.Identifier(path, c.dirs) == id {
				return path, nil
			}
		}
	}
	return "", &EntryNotFoundError{ID: id, Dirs: c.SearchDirs()}
}
