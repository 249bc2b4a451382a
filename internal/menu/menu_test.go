// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"bytes"
	"testing"

	"github.com/mjklukowski/rofi-apps/internal/entry"
)

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry entry.Entry
		want  string
	}{
		{
			name:  "themed icon",
			entry: entry.Entry{Name: "Foo", Icon: "bar", Path: "/x/y.desktop"},
			want:  "Foo\x00icon\x1fbar\x1finfo\x1f/x/y.desktop",
		},
		{
			name:  "absent icon keeps the field",
			entry: entry.Entry{Name: "Foo", Path: "/x/y.desktop"},
			want:  "Foo\x00icon\x1f\x1finfo\x1f/x/y.desktop",
		},
		{
			name:  "icon file",
			entry: entry.Entry{Name: "Näme", Icon: "/icons/a.png", Path: "/a.desktop"},
			want:  "Näme\x00icon\x1f/icons/a.png\x1finfo\x1f/a.desktop",
		},
		{
			name:  "newline in name",
			entry: entry.Entry{Name: "Two\nLines", Path: "/a.desktop"},
			want:  "Two Lines\x00icon\x1f\x1finfo\x1f/a.desktop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Line(tt.entry); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAndWrite(t *testing.T) {
	t.Parallel()

	list := entry.List{
		{Name: "A", Icon: "a", Path: "/a.desktop"},
		{Name: "B", Path: "/b.desktop"},
	}
	want := "A\x00icon\x1fa\x1finfo\x1f/a.desktop\n" +
		"B\x00icon\x1f\x1finfo\x1f/b.desktop\n"

	if got := Format(list); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	var buf bytes.Buffer
	if err := Write(&buf, list); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != want {
		t.Errorf("Write() wrote %q, want %q", buf.String(), want)
	}

	if Format(nil) != "" {
		t.Error("Format(nil) should be empty")
	}
}
