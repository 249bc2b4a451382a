// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// detach starts the child in a new session so it outlives the menu host.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
