// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/mjklukowski/rofi-apps/cmd/rofiapps"

func main() {
	cmd.Execute()
}
