// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mjklukowski/rofi-apps/internal/testutil/entrytest"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	high := filepath.Join(root, "high")
	low := filepath.Join(root, "low")

	shadowing := entrytest.WriteDesktopFile(t, high, "firefox.desktop")
	entrytest.WriteDesktopFile(t, low, "firefox.desktop")
	nested := entrytest.WriteDesktopFile(t, low, "org/app.desktop")

	c := newTestCollector(high, low)

	tests := []struct {
		id   string
		want string
	}{
		{id: "firefox", want: shadowing},
		{id: "org-app", want: nested},
	}
	for _, tt := range tests {
		got, err := c.Resolve(tt.id)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", tt.id, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}

	_, err := c.Resolve("app")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Resolve(stem of nested file) error = %v, want ErrEntryNotFound", err)
	}
	var nfErr *EntryNotFoundError
	if !errors.As(err, &nfErr) || nfErr.ID != "app" || len(nfErr.Dirs) != 2 {
		t.Errorf("error = %#v", err)
	}
}
