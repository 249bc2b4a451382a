// SPDX-License-Identifier: MPL-2.0

package entry

import (
	"path/filepath"
	"testing"
)

func TestIdentifier(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/usr/share/applications")
	local := filepath.FromSlash("/home/user/.local/share/applications")
	dirs := []string{local, root}

	tests := []struct {
		name string
		path string
		dirs []string
		want string
	}{
		{
			name: "subdirectory joined with hyphen",
			path: filepath.Join(root, "org", "app.desktop"),
			dirs: dirs,
			want: "org-app",
		},
		{
			name: "deeper nesting",
			path: filepath.Join(root, "org", "example", "app.desktop"),
			dirs: dirs,
			want: "org-example-app",
		},
		{
			name: "directly in root",
			path: filepath.Join(local, "firefox.desktop"),
			dirs: dirs,
			want: "firefox",
		},
		{
			name: "dotted stem keeps inner dots",
			path: filepath.Join(root, "org.gnome.Calculator.desktop"),
			dirs: dirs,
			want: "org.gnome.Calculator",
		},
		{
			name: "outside all roots falls back to stem",
			path: filepath.FromSlash("/opt/apps/nested/tool.desktop"),
			dirs: dirs,
			want: "tool",
		},
		{
			name: "sibling with shared prefix is not an ancestor",
			path: filepath.FromSlash("/usr/share/applications2/x/y.desktop"),
			dirs: []string{root},
			want: "y",
		},
		{
			name: "first ancestor in precedence order wins",
			path: filepath.Join(root, "kde", "app.desktop"),
			dirs: []string{filepath.Dir(root), root},
			want: "applications-kde-app",
		},
		{
			name: "no search directories",
			path: filepath.Join(root, "org", "app.desktop"),
			dirs: nil,
			want: "app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Identifier(tt.path, tt.dirs); got != tt.want {
				t.Errorf("Identifier(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEntryFilename(t *testing.T) {
	t.Parallel()

	e := Entry{Path: filepath.FromSlash("/usr/share/applications/org/app.desktop")}
	if got := e.Filename(); got != "app.desktop" {
		t.Errorf("Filename() = %q, want %q", got, "app.desktop")
	}
}
