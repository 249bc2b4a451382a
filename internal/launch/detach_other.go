// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package launch

import "os/exec"

func detach(*exec.Cmd) {}
