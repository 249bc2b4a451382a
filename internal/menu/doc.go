// SPDX-License-Identifier: MPL-2.0

// Package menu serializes entry lists into the rofi script-mode row format.
//
// Each row is the display name followed by row options, separated by NUL and
// unit-separator bytes:
//
//	Name\x00icon\x1f<icon>\x1finfo\x1f<path>\n
//
// rofi hands the info field back in ROFI_INFO when the row is selected.
package menu
