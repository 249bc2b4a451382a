// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mjklukowski/rofi-apps/pkg/cueutil"
)

var (
	// ErrConfigNotFound is returned when no candidate rule file exists.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrConfigParse is returned when the rule file cannot be read, does not
	// match the schema, or carries an invalid pattern.
	ErrConfigParse = errors.New("configuration file is malformed")
	// ErrMissingKey is returned when blacklist, pinned or customs is absent.
	ErrMissingKey = errors.New("configuration key missing")
)

type (
	// NotFoundError lists every candidate path that was tried.
	NotFoundError struct {
		Candidates []string
	}

	// ParseError reports a rule file that could not be decoded.
	ParseError struct {
		Path  string
		Cause error
	}

	// MissingKeyError names the required key absent from the rule file.
	MissingKeyError struct {
		Path string
		Key  string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no configuration file found (tried %s)", strings.Join(e.Candidates, ", "))
}

// Unwrap returns ErrConfigNotFound.
func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// Error implements the error interface.
func (e *ParseError) Error() string {
	var docErr *cueutil.DocumentError
	if errors.As(e.Cause, &docErr) && docErr.File == e.Path {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Cause)
}

// Is reports ErrConfigParse so the cause stays reachable through Unwrap.
func (e *ParseError) Is(target error) bool { return target == ErrConfigParse }

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Cause }

// Error implements the error interface.
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: required key %q is missing", e.Path, e.Key)
}

// Unwrap returns ErrMissingKey.
func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }
