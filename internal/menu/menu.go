// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mjklukowski/rofi-apps/internal/entry"
)

const (
	// OptionSeparator starts the row options after the display text.
	OptionSeparator = "\x00"
	// FieldSeparator separates option keys and values.
	FieldSeparator = "\x1f"

	iconKey = "icon"
	infoKey = "info"
)

// rowText keeps a row on one line; rofi would split it otherwise.
var rowText = strings.NewReplacer("\n", " ", "\r", " ", "\x00", "")

// Line returns the row for e without the trailing newline. An absent icon is
// an empty field.
func Line(e entry.Entry) string {
	var b strings.Builder
	b.WriteString(rowText.Replace(e.Name))
	b.WriteString(OptionSeparator)
	b.WriteString(iconKey)
	b.WriteString(FieldSeparator)
	b.WriteString(rowText.Replace(e.Icon))
	b.WriteString(FieldSeparator)
	b.WriteString(infoKey)
	b.WriteString(FieldSeparator)
	b.WriteString(e.Path)
	return b.String()
}

// Format returns every row of list, each terminated by a newline.
func Format(list entry.List) string {
	var b strings.Builder
	for _, e := range list {
		b.WriteString(Line(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// Write streams the rows of list to w. The bytes match Format(list).
func Write(w io.Writer, list entry.List) error {
	bw := bufio.NewWriter(w)
	for _, e := range list {
		if _, err := bw.WriteString(Line(e) + "\n"); err != nil {
			return fmt.Errorf("failed to write menu row: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write menu rows: %w", err)
	}
	return nil
}
