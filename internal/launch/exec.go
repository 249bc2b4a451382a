// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"github.com/mjklukowski/rofi-apps/internal/entry"
)

type (
	// Resolver maps an identifier back to its entry file.
	Resolver interface {
		Resolve(id string) (string, error)
	}

	// Exec launches by starting the entry's own command line.
	Exec struct {
		resolver Resolver
		parser   entry.DescriptorParser
		start    StartFunc
	}
)

// NewExec returns an Exec launcher. A nil start uses Start.
func NewExec(resolver Resolver, parser entry.DescriptorParser, start StartFunc) *Exec {
	if start == nil {
		start = Start
	}
	return &Exec{resolver: resolver, parser: parser, start: start}
}

// Launch implements Launcher.
func (l *Exec) Launch(ctx context.Context, target Target) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	path := target.Path
	if path == "" {
		var err error
		if path, err = l.resolver.Resolve(target.ID); err != nil {
			return err
		}
	}

	desc, err := l.parser.Parse(path)
	if err != nil {
		return err
	}

	argv, err := Argv(desc.Exec)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return l.start(argv)
}

// Argv removes field codes from an Exec value and splits it into arguments
// with shell quoting rules.
func Argv(execLine string) ([]string, error) {
	fields, err := shell.Fields(StripFieldCodes(execLine), nil)
	if err != nil {
		return nil, fmt.Errorf("invalid Exec line %q: %w", execLine, err)
	}
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	return fields, nil
}

// StripFieldCodes drops desktop-entry field codes such as %u and %F and
// turns %% into a literal percent sign. Unknown codes are dropped as well.
// An unquoted argument left empty by the removal disappears when the line is
// split.
func StripFieldCodes(execLine string) string {
	var b strings.Builder
	for i := 0; i < len(execLine); i++ {
		c := execLine[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(execLine) {
			break
		}
		i++
		if execLine[i] == '%' {
			b.WriteByte('%')
		}
	}
	return b.String()
}
