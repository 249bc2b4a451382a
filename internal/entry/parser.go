// SPDX-License-Identifier: MPL-2.0

package entry

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	desktopSection  = "Desktop Entry"
	applicationType = "Application"
)

// ErrParse is the sentinel wrapped by ParseError.
var ErrParse = errors.New("invalid entry description")

type (
	// Descriptor is the structured form of one entry-description file.
	Descriptor struct {
		Name      string
		Exec      string
		Icon      Icon
		NoDisplay bool
	}

	// DescriptorParser turns one entry-description file into a Descriptor.
	DescriptorParser interface {
		Parse(path string) (*Descriptor, error)
	}

	// ParseError reports a file that is not a valid entry description.
	ParseError struct {
		Path   string
		Reason string
		Cause  error
	}

	// DesktopParser parses freedesktop desktop entry files.
	DesktopParser struct {
		// Locale selects localized keys, e.g. "de_DE.UTF-8". Empty uses the
		// unlocalized values.
		Locale string
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap returns ErrParse so callers can use errors.Is.
func (e *ParseError) Unwrap() error { return ErrParse }

// NewDesktopParser returns a parser that prefers names for locale.
func NewDesktopParser(locale string) *DesktopParser {
	return &DesktopParser{Locale: locale}
}

// Parse implements DescriptorParser.
func (p *DesktopParser) Parse(path string) (*Descriptor, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
		KeyValueDelimiters:      "=",
	}, path)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "unreadable key file", Cause: err}
	}

	section, err := file.GetSection(desktopSection)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "missing [" + desktopSection + "] group"}
	}

	if kind := section.Key("Type").String(); kind != applicationType {
		return nil, &ParseError{Path: path, Reason: fmt.Sprintf("type %q is not %s", kind, applicationType)}
	}

	name := p.localized(section, "Name")
	if name == "" {
		return nil, &ParseError{Path: path, Reason: "missing Name key"}
	}

	return &Descriptor{
		Name:      name,
		Exec:      section.Key("Exec").String(),
		Icon:      ClassifyIcon(section.Key("Icon").String()),
		NoDisplay: section.Key("NoDisplay").MustBool(false) || section.Key("Hidden").MustBool(false),
	}, nil
}

// localized looks up key[ll_CC], key[ll], then key.
func (p *DesktopParser) localized(section *ini.Section, key string) string {
	for _, suffix := range localeSuffixes(p.Locale) {
		localizedKey := key + "[" + suffix + "]"
		if section.HasKey(localizedKey) {
			if v := strings.TrimSpace(section.Key(localizedKey).String()); v != "" {
				return v
			}
		}
	}
	return strings.TrimSpace(section.Key(key).String())
}

// localeSuffixes turns "de_DE.UTF-8@euro" into ["de_DE", "de"].
func localeSuffixes(locale string) []string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return nil
	}
	suffixes := []string{locale}
	if lang, _, ok := strings.Cut(locale, "_"); ok && lang != "" {
		suffixes = append(suffixes, lang)
	}
	return suffixes
}
