// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBlankPath is matched by every *BlankPathError.
var ErrBlankPath = errors.New("blank filesystem path")

// FilesystemPath is a path given on the command line or in settings.
// Relative paths are allowed; blank ones are not.
type FilesystemPath string

// BlankPathError reports a FilesystemPath that holds only whitespace.
type BlankPathError struct {
	Value FilesystemPath
}

func (p FilesystemPath) String() string { return string(p) }

// Validate rejects empty and whitespace-only paths.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) != "" {
		return nil
	}
	return &BlankPathError{Value: p}
}

func (e *BlankPathError) Error() string {
	return fmt.Sprintf("path %q is blank", string(e.Value))
}

func (e *BlankPathError) Unwrap() error { return ErrBlankPath }
