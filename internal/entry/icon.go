// SPDX-License-Identifier: MPL-2.0

package entry

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// IconNone means the descriptor has no icon.
	IconNone IconKind = iota
	// IconFile is an absolute path to an image file.
	IconFile
	// IconThemed is a symbolic name looked up in the icon theme.
	IconThemed
	// IconUnknown is any representation neither a file nor a themed name.
	IconUnknown
)

// ErrUnknownIcon is the sentinel wrapped by IconError.
var ErrUnknownIcon = errors.New("unrecognized icon kind")

type (
	// IconKind classifies the icon representation reported by a parser.
	IconKind int

	// Icon is the icon as reported by a DescriptorParser.
	Icon struct {
		Kind  IconKind
		Value string
	}

	// IconError reports an icon that cannot be turned into a file path or name.
	IconError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *IconError) Error() string {
	return fmt.Sprintf("unrecognized icon %q", e.Value)
}

// Unwrap returns ErrUnknownIcon.
func (e *IconError) Unwrap() error { return ErrUnknownIcon }

// ClassifyIcon maps a raw Icon key value onto an Icon.
func ClassifyIcon(value string) Icon {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return Icon{Kind: IconNone}
	case filepath.IsAbs(value):
		return Icon{Kind: IconFile, Value: value}
	case strings.ContainsRune(value, '/'):
		return Icon{Kind: IconUnknown, Value: value}
	default:
		return Icon{Kind: IconThemed, Value: value}
	}
}

// Resolve returns the serializable icon value. An absent icon resolves to "".
func (i Icon) Resolve() (string, error) {
	switch i.Kind {
	case IconNone:
		return "", nil
	case IconFile, IconThemed:
		return i.Value, nil
	default:
		return "", &IconError{Value: i.Value}
	}
}
