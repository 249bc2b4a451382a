// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for rofi-apps.
//
// App is the composition root: every Cobra handler receives it and delegates
// to its services. The root command doubles as the rofi script-mode entry
// point; the rofi environment is read once there and turned into an
// Invocation before any service runs.
package cmd
