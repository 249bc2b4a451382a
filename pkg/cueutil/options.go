// SPDX-License-Identifier: MPL-2.0

package cueutil

// MaxDocumentSize is the largest document Decode accepts unless
// WithSizeLimit says otherwise.
const MaxDocumentSize = 4 << 20

type (
	// Option tunes a Decode call.
	Option func(*decoder)

	decoder struct {
		file     string
		limit    int
		required []string
	}
)

// WithFilename names the document in positions and error messages.
func WithFilename(name string) Option {
	return func(d *decoder) { d.file = name }
}

func WithSizeLimit(bytes int) Option {
	return func(d *decoder) { d.limit = bytes }
}

// WithRequired lists top-level keys the document itself must contain.
// They are checked before the schema is applied.
func WithRequired(keys ...string) Option {
	return func(d *decoder) { d.required = append(d.required, keys...) }
}
