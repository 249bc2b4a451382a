// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var (
	// ErrMissingField is matched by every *MissingFieldError.
	ErrMissingField = errors.New("required field missing")
	// ErrTooLarge is returned when a document exceeds the size limit.
	ErrTooLarge = errors.New("document too large")
)

// MissingFieldError names a required top-level key the document lacks.
type MissingFieldError struct {
	File  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %q is missing", e.File, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// Decode compiles data, unifies it with the definition named def in schema
// and decodes the concrete result into a new T.
//
// Problems in data come back as *DocumentError, absent required keys as
// *MissingFieldError. A broken schema is reported as a plain error.
func Decode[T any](schema, data []byte, def string, opts ...Option) (*T, error) {
	d := decoder{file: "<input>", limit: MaxDocumentSize}
	for _, opt := range opts {
		opt(&d)
	}

	if len(data) > d.limit {
		return nil, fmt.Errorf("%s: %w: %d bytes, limit %d", d.file, ErrTooLarge, len(data), d.limit)
	}

	cc := cuecontext.New()
	root := cc.CompileBytes(schema).LookupPath(cue.ParsePath(def))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("schema %s: %w", def, err)
	}

	doc := cc.CompileBytes(data, cue.Filename(d.file))
	if err := doc.Err(); err != nil {
		return nil, newDocumentError(err, d.file)
	}
	for _, key := range d.required {
		if !doc.LookupPath(cue.MakePath(cue.Str(key))).Exists() {
			return nil, &MissingFieldError{File: d.file, Field: key}
		}
	}

	v := root.Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, newDocumentError(err, d.file)
	}
	out := new(T)
	if err := v.Decode(out); err != nil {
		return nil, newDocumentError(err, d.file)
	}
	return out, nil
}
