// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LocaleTag converts a POSIX locale such as "de_DE.UTF-8@euro" into a BCP 47
// tag. Empty, "C" and "POSIX" locales and unparsable values map to the root
// collation.
func LocaleTag(locale string) language.Tag {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// NewCollator returns the dictionary-order collator for locale.
func NewCollator(locale string) *collate.Collator {
	return collate.New(LocaleTag(locale))
}
