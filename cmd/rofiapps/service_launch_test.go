// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mjklukowski/rofi-apps/internal/config"
	"github.com/mjklukowski/rofi-apps/internal/discovery"
	"github.com/mjklukowski/rofi-apps/internal/entry"
	"github.com/mjklukowski/rofi-apps/internal/issue"
	"github.com/mjklukowski/rofi-apps/internal/launch"
	"github.com/mjklukowski/rofi-apps/internal/testutil/entrytest"
)

// recordingStart captures argv instead of starting processes.
type recordingStart struct {
	argv [][]string
	err  error
}

func (r *recordingStart) start(argv []string) error {
	r.argv = append(r.argv, argv)
	return r.err
}

func launchSettings(t *testing.T, launcher string) (*config.Settings, string) {
	t.Helper()
	apps := filepath.Join(t.TempDir(), "applications")
	return &config.Settings{SearchDirs: []string{apps}, Launcher: launcher}, apps
}

func TestTargetFor(t *testing.T) {
	t.Parallel()

	dirs := []string{"/usr/share/applications"}
	tests := []struct {
		arg  string
		want launch.Target
	}{
		{
			arg:  "/usr/share/applications/org/gnome/Terminal.desktop",
			want: launch.Target{ID: "org-gnome-Terminal", Path: "/usr/share/applications/org/gnome/Terminal.desktop"},
		},
		{arg: "firefox", want: launch.Target{ID: "firefox"}},
		{arg: "/opt/tool", want: launch.Target{ID: "/opt/tool"}},
	}

	for _, tt := range tests {
		if got := targetFor(tt.arg, dirs); got != tt.want {
			t.Errorf("targetFor(%q) = %+v, want %+v", tt.arg, got, tt.want)
		}
	}
}

func TestLaunchService_Command(t *testing.T) {
	t.Parallel()

	settings, apps := launchSettings(t, "gtk-launch")
	path := entrytest.WriteDesktopFile(t, apps, "org/example/app.desktop")
	rec := &recordingStart{}
	svc := &launchService{start: rec.start}

	for _, target := range []string{path, "org-example-app"} {
		if err := svc.Launch(context.Background(), LaunchRequest{Settings: settings, Target: target}); err != nil {
			t.Fatalf("Launch(%q) error = %v", target, err)
		}
	}

	want := []string{"gtk-launch", "org-example-app"}
	for i, argv := range rec.argv {
		if !slices.Equal(argv, want) {
			t.Errorf("call %d argv = %q, want %q", i, argv, want)
		}
	}
	if len(rec.argv) != 2 {
		t.Errorf("start called %d times, want 2", len(rec.argv))
	}
}

func TestLaunchService_Exec(t *testing.T) {
	t.Parallel()

	settings, apps := launchSettings(t, config.LauncherExec)
	entrytest.WriteDesktopFile(t, apps, "editor.desktop", entrytest.WithExec("editor --new-window %U"))
	rec := &recordingStart{}
	svc := &launchService{parser: entry.NewDesktopParser(""), start: rec.start}

	if err := svc.Launch(context.Background(), LaunchRequest{Settings: settings, Target: "editor"}); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	want := []string{"editor", "--new-window"}
	if len(rec.argv) != 1 || !slices.Equal(rec.argv[0], want) {
		t.Errorf("argv = %q, want %q", rec.argv, want)
	}
}

func TestLaunchService_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		launcher string
		target   string
		startErr error
		wantIs   error
		wantID   issue.Id
	}{
		{
			name:     "unknown identifier",
			launcher: config.LauncherExec,
			target:   "missing",
			wantIs:   discovery.ErrEntryNotFound,
			wantID:   issue.EntryNotFoundId,
		},
		{
			name:     "launcher not installed",
			launcher: "gtk-launch",
			target:   "anything",
			startErr: &launch.StartError{Argv: []string{"gtk-launch"}, Cause: fmt.Errorf("exec: %w", exec.ErrNotFound)},
			wantIs:   exec.ErrNotFound,
			wantID:   issue.LauncherNotFoundId,
		},
		{
			name:     "start failure",
			launcher: "gtk-launch",
			target:   "anything",
			startErr: errors.New("permission denied"),
			wantID:   issue.LaunchFailedId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			settings, _ := launchSettings(t, tt.launcher)
			rec := &recordingStart{err: tt.startErr}
			svc := &launchService{parser: entry.NewDesktopParser(""), start: rec.start}

			err := svc.Launch(context.Background(), LaunchRequest{Settings: settings, Target: tt.target})
			if err == nil {
				t.Fatal("Launch() error = nil")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("Launch() error = %v, want errors.Is %v", err, tt.wantIs)
			}
			if got := issueIDFor(err); got != tt.wantID {
				t.Errorf("issueIDFor() = %d, want %d", got, tt.wantID)
			}
			if got := exitCodeFor(err); got != 1 {
				t.Errorf("exitCodeFor() = %d, want 1", got)
			}
		})
	}
}
