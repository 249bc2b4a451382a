// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Styles for stderr only. The menu on stdout is read by rofi and stays plain.
var (
	accent = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	dim    = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtleStyle = lipgloss.NewStyle().Foreground(dim)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
)
