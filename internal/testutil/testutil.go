// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// restoreEnv returns a func that puts key back the way it was when
// restoreEnv was called.
func restoreEnv(t testing.TB, key string) func() {
	prev, had := os.LookupEnv(key)
	return func() {
		var err error
		if had {
			err = os.Setenv(key, prev)
		} else {
			err = os.Unsetenv(key)
		}
		if err != nil {
			t.Errorf("restore env %s: %v", key, err)
		}
	}
}

// MustSetenv sets key for the duration of a test. Pass the result to t.Cleanup.
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	restore := restoreEnv(t, key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s: %v", key, err)
	}
	return restore
}

// MustUnsetenv clears key for the duration of a test. Pass the result to t.Cleanup.
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	restore := restoreEnv(t, key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
	return restore
}

func MustMkdirAll(t testing.TB, dir string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(dir, perm); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

// MustWriteFile creates path (and its parent directories) holding content.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func MustRemove(t testing.TB, path string) {
	t.Helper()
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove %s: %v", path, err)
	}
}

// MustTouch pins both atime and mtime of path, so cache tokens are predictable.
func MustTouch(t testing.TB, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func MustReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
