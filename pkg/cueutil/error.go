// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strconv"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

type (
	// FieldError is one problem CUE found in a document, located by a
	// JSON-style path such as "pinned[0].name". Path is empty for syntax
	// errors that have no field.
	FieldError struct {
		Path    string
		Message string
	}

	// DocumentError collects every FieldError reported for one file.
	DocumentError struct {
		File   string
		Fields []FieldError
		cause  error
	}
)

func (f FieldError) String() string {
	if f.Path == "" {
		return f.Message
	}
	return f.Path + ": " + f.Message
}

func (e *DocumentError) Error() string {
	switch len(e.Fields) {
	case 0:
		return fmt.Sprintf("%s: %v", e.File, e.cause)
	case 1:
		return e.File + ": " + e.Fields[0].String()
	}
	var sb strings.Builder
	sb.WriteString(e.File)
	sb.WriteString(": invalid document:")
	for _, f := range e.Fields {
		sb.WriteString("\n  ")
		sb.WriteString(f.String())
	}
	return sb.String()
}

func (e *DocumentError) Unwrap() error { return e.cause }

// newDocumentError splits a CUE error list into per-field entries.
// It returns nil for a nil err.
func newDocumentError(err error, file string) error {
	if err == nil {
		return nil
	}
	docErr := &DocumentError{File: file, cause: err}
	for _, e := range cueerrors.Errors(err) {
		path := jsonPath(cueerrors.Path(e))
		msg := e.Error()
		if path != "" {
			// CUE may lead the message with the same path.
			if rest, ok := strings.CutPrefix(msg, path); ok {
				msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
			}
		}
		docErr.Fields = append(docErr.Fields, FieldError{Path: path, Message: msg})
	}
	return docErr
}

// jsonPath renders CUE selectors as pinned[0].name. A numeric first
// selector stays a plain key.
func jsonPath(selectors []string) string {
	var sb strings.Builder
	for i, sel := range selectors {
		if i == 0 {
			sb.WriteString(sel)
			continue
		}
		if _, err := strconv.ParseUint(sel, 10, 64); err == nil {
			fmt.Fprintf(&sb, "[%s]", sel)
			continue
		}
		sb.WriteByte('.')
		sb.WriteString(sel)
	}
	return sb.String()
}
