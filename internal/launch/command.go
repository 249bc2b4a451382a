// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"fmt"
)

// Command launches by running Program with the identifier as its argument.
type Command struct {
	Program string
	start   StartFunc
}

// NewCommand returns a Command launcher for program. A nil start uses Start.
func NewCommand(program string, start StartFunc) *Command {
	if start == nil {
		start = Start
	}
	return &Command{Program: program, start: start}
}

// Launch implements Launcher.
func (c *Command) Launch(ctx context.Context, target Target) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if target.ID == "" {
		return fmt.Errorf("%w: no identifier to pass to %s", ErrEmptyCommand, c.Program)
	}
	return c.start([]string{c.Program, target.ID})
}
