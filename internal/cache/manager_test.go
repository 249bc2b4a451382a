// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mjklukowski/rofi-apps/internal/testutil"
)

type fakeCounter struct{ n int }

func (f *fakeCounter) Count() int { return f.n }

func newTestManager(t *testing.T) (*Manager, *fakeCounter, string) {
	t.Helper()
	root := t.TempDir()
	cfgPath := filepath.Join(root, "config.json")
	testutil.MustWriteFile(t, cfgPath, "{}")
	testutil.MustTouch(t, cfgPath, time.Unix(1700000000, 0))

	counter := &fakeCounter{n: 5}
	return NewManager(filepath.Join(root, "cache"), counter), counter, cfgPath
}

func storeCurrent(t *testing.T, m *Manager, cfgPath, payload string) {
	t.Helper()
	tok, err := m.CurrentToken(cfgPath)
	if err != nil {
		t.Fatalf("CurrentToken() error = %v", err)
	}
	if err := m.Store(tok, payload); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
}

func TestCheck_NoPayload(t *testing.T) {
	t.Parallel()

	m, _, cfgPath := newTestManager(t)
	status, err := m.Check(cfgPath)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if status.Valid || status.Reason != ReasonNoPayload || status.Stored != nil {
		t.Errorf("Check() = %+v", status)
	}
	if status.Current.ConfigMtime != "1700000000" || status.Current.Count != 5 {
		t.Errorf("Current = %+v", status.Current)
	}

	if _, err := m.Load(); !errors.Is(err, ErrNoCache) {
		t.Errorf("Load() error = %v, want ErrNoCache", err)
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	t.Parallel()

	m, _, cfgPath := newTestManager(t)
	payload := "Foo\x00icon\x1fbar\x1finfo\x1f/x/y.desktop\n"
	storeCurrent(t, m, cfgPath, payload)

	if !m.Valid(cfgPath) {
		t.Fatal("freshly stored cache should be valid")
	}
	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != payload {
		t.Errorf("Load() = %q, want %q", got, payload)
	}

	if got := testutil.MustReadFile(t, m.TokenPath()); got != "1700000000\n5\n" {
		t.Errorf("token file = %q", got)
	}

	leftovers, _ := filepath.Glob(filepath.Join(m.Dir(), ".*"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestCheck_Invalidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change func(t *testing.T, counter *fakeCounter, cfgPath string)
		want   Reason
	}{
		{
			name: "mtime forward",
			change: func(t *testing.T, _ *fakeCounter, cfgPath string) {
				testutil.MustTouch(t, cfgPath, time.Unix(1700000100, 0))
			},
			want: ReasonConfigChanged,
		},
		{
			name: "mtime backward",
			change: func(t *testing.T, _ *fakeCounter, cfgPath string) {
				testutil.MustTouch(t, cfgPath, time.Unix(1600000000, 0))
			},
			want: ReasonConfigChanged,
		},
		{
			name: "sub-second change",
			change: func(t *testing.T, _ *fakeCounter, cfgPath string) {
				testutil.MustTouch(t, cfgPath, time.Unix(1700000000, 250000000))
			},
			want: ReasonConfigChanged,
		},
		{
			name: "entry added",
			change: func(_ *testing.T, counter *fakeCounter, _ string) {
				counter.n++
			},
			want: ReasonCountChanged,
		},
		{
			name: "entry removed",
			change: func(_ *testing.T, counter *fakeCounter, _ string) {
				counter.n--
			},
			want: ReasonCountChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, counter, cfgPath := newTestManager(t)
			storeCurrent(t, m, cfgPath, "x\n")

			tt.change(t, counter, cfgPath)

			status, err := m.Check(cfgPath)
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if status.Valid || status.Reason != tt.want {
				t.Errorf("Check() = valid %v reason %q, want invalid %q", status.Valid, status.Reason, tt.want)
			}
			if status.Stored == nil {
				t.Error("Stored should be populated when a token exists")
			}
		})
	}
}

func TestCheck_CorruptToken(t *testing.T) {
	t.Parallel()

	m, _, cfgPath := newTestManager(t)
	storeCurrent(t, m, cfgPath, "x\n")
	testutil.MustWriteFile(t, m.TokenPath(), "garbage")

	status, err := m.Check(cfgPath)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if status.Valid || status.Reason != ReasonBadToken {
		t.Errorf("Check() = %+v, want %q", status, ReasonBadToken)
	}

	testutil.MustRemove(t, m.TokenPath())
	if m.Valid(cfgPath) {
		t.Error("missing token must invalidate")
	}
}

func TestCheck_MissingConfig(t *testing.T) {
	t.Parallel()

	m, _, cfgPath := newTestManager(t)
	testutil.MustRemove(t, cfgPath)

	if _, err := m.Check(cfgPath); err == nil {
		t.Error("Check() should fail when the rule file is gone")
	}
	if m.Valid(cfgPath) {
		t.Error("Valid() must be false when the token cannot be computed")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	m, _, cfgPath := newTestManager(t)
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear() on an empty cache error = %v", err)
	}

	storeCurrent(t, m, cfgPath, "x\n")
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	for _, path := range []string{m.PayloadPath(), m.TokenPath()} {
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s still exists after Clear()", path)
		}
	}
}
