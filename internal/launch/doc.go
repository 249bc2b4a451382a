// SPDX-License-Identifier: MPL-2.0

// Package launch starts a chosen entry without waiting for it.
//
// Command hands the identifier to an external program such as gtk-launch.
// Exec reads the entry file itself and starts its command line. Either way the
// child is detached from the menu host: its standard streams go to the null
// device and it runs in its own session where supported. Start failures are
// returned as is; nothing is retried.
package launch
