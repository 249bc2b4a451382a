// SPDX-License-Identifier: MPL-2.0

package cmd

import "os"

const (
	// ModeList prints the menu rows.
	ModeList Mode = iota
	// ModeLaunch starts the selected entry.
	ModeLaunch
)

const (
	// envRofiRetv is rofi's script-mode state. 1 means a row was selected.
	envRofiRetv = "ROFI_RETV"
	// envRofiInfo carries the info field of the selected row.
	envRofiInfo = "ROFI_INFO"

	retvInitial       = "0"
	retvEntrySelected = "1"
)

type (
	// Mode is what a bare invocation does.
	Mode int

	// Invocation is the typed form of rofi's script-mode environment.
	Invocation struct {
		Mode Mode
		// Target is the path or identifier to launch in ModeLaunch.
		Target string
	}

	// Environment is the slice of process environment the root command reads.
	Environment interface {
		LookupEnv(key string) (string, bool)
		Unsetenv(key string) error
	}

	osEnvironment struct{}
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeLaunch {
		return "launch"
	}
	return "list"
}

// invocationFromEnv translates the rofi script-mode state. ROFI_RETV is
// removed from env so a launched program that is itself a rofi script does
// not see the selection.
func invocationFromEnv(env Environment) (Invocation, error) {
	retv, hasRetv := env.LookupEnv(envRofiRetv)
	if !hasRetv {
		return Invocation{Mode: ModeList}, nil
	}
	if err := env.Unsetenv(envRofiRetv); err != nil {
		return Invocation{}, err
	}

	info, _ := env.LookupEnv(envRofiInfo)
	if retv != retvEntrySelected || info == "" {
		return Invocation{Mode: ModeList}, nil
	}
	return Invocation{Mode: ModeLaunch, Target: info}, nil
}

// commandArgs drops the row text rofi appends to argv after a selection, so
// a row named like a subcommand cannot shadow the environment-selected mode.
// Arguments from the modi command line itself are kept.
func commandArgs(env Environment, args []string) []string {
	retv, ok := env.LookupEnv(envRofiRetv)
	if !ok || retv == retvInitial || len(args) == 0 {
		return args
	}
	return args[:len(args)-1]
}

func (osEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (osEnvironment) Unsetenv(key string) error { return os.Unsetenv(key) }
