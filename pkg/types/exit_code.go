// SPDX-License-Identifier: MPL-2.0

package types

import "strconv"

// ExitCode is the status the process reports to rofi on exit.
type ExitCode int

const (
	// ExitOK means the menu was printed or the entry was handed to the launcher.
	ExitOK ExitCode = 0
	// ExitFailure covers every failure without a dedicated code, launch errors included.
	ExitFailure ExitCode = 1
	// ExitConfigMissing means no rule file was found in any candidate location.
	ExitConfigMissing ExitCode = 2
)

// String renders the code as a decimal number.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// Label names the code for log output.
func (c ExitCode) Label() string {
	switch c {
	case ExitOK:
		return "ok"
	case ExitConfigMissing:
		return "config-missing"
	case ExitFailure:
		return "failure"
	default:
		return "exit-" + c.String()
	}
}
