// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrEmptyCommand is returned when there is nothing to start.
var ErrEmptyCommand = errors.New("empty command line")

type (
	// Target identifies the entry to launch. Path is optional; when empty,
	// launchers that need the file resolve it from ID.
	Target struct {
		ID   string
		Path string
	}

	// Launcher starts an entry and returns once the process is started.
	Launcher interface {
		Launch(ctx context.Context, target Target) error
	}

	// StartFunc starts argv detached. Tests replace it to observe argv.
	StartFunc func(argv []string) error

	// StartError reports a process that could not be started.
	StartError struct {
		Argv  []string
		Cause error
	}
)

// Error implements the error interface.
func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", e.Argv[0], e.Cause)
}

// Unwrap returns the underlying cause.
func (e *StartError) Unwrap() error { return e.Cause }

// Start runs argv in the background with its standard streams on the null
// device, then releases it.
func Start(argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return &StartError{Argv: argv, Cause: err}
	}
	return cmd.Process.Release()
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("launch canceled: %w", err)
	}
	return nil
}
