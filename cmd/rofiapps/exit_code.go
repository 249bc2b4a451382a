// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/mjklukowski/rofi-apps/internal/config"
	"github.com/mjklukowski/rofi-apps/pkg/types"
)

// exitCodeFor maps a command error to the process status: 2 when no rule
// file exists anywhere, 1 for any other failure.
func exitCodeFor(err error) types.ExitCode {
	switch {
	case err == nil:
		return types.ExitOK
	case errors.Is(err, config.ErrConfigNotFound):
		return types.ExitConfigMissing
	default:
		return types.ExitFailure
	}
}
