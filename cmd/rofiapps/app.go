// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/mjklukowski/rofi-apps/internal/cache"
	"github.com/mjklukowski/rofi-apps/internal/config"
	"github.com/mjklukowski/rofi-apps/internal/discovery"
	"github.com/mjklukowski/rofi-apps/internal/entry"
	"github.com/mjklukowski/rofi-apps/internal/issue"
	"github.com/mjklukowski/rofi-apps/internal/launch"
)

type (
	// App holds what every command handler needs: the services, the settings
	// resolved for this run and the two output streams.
	App struct {
		Config      ConfigProvider
		Lists       ListService
		Launches    LaunchService
		Diagnostics DiagnosticRenderer
		env         Environment
		viper       *viper.Viper
		settings    *config.Settings
		verbose     bool
		stdout      io.Writer
		stderr      io.Writer
	}

	// Dependencies lets tests swap parts of an App. NewApp fills nil fields
	// with the real implementations.
	Dependencies struct {
		Config      ConfigProvider
		Lists       ListService
		Launches    LaunchService
		Diagnostics DiagnosticRenderer
		// Parser overrides the desktop-entry parser built per request.
		Parser entry.DescriptorParser
		// Start overrides how launchers start processes.
		Start  launch.StartFunc
		Env    Environment
		Viper  *viper.Viper
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider finds and parses the rule file.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// ListRequest captures the inputs of one list run.
	ListRequest struct {
		Settings *config.Settings
		// NoCache skips the cached list; the cache is still rewritten.
		NoCache bool
	}

	// ListResult is the menu text and where it came from. Entries holds the
	// rebuilt list and is nil when Text came from the cache.
	ListResult struct {
		Text      string
		Entries   entry.List
		FromCache bool
		// Reason is the cache decision that led here.
		Reason cache.Reason
	}

	// ListService produces the menu rows. Implementations must not write to
	// stdout; diagnostics are returned for the CLI layer to render.
	ListService interface {
		List(ctx context.Context, req ListRequest) (ListResult, []discovery.Diagnostic, error)
	}

	// LaunchRequest captures the inputs of one launch.
	LaunchRequest struct {
		Settings *config.Settings
		// Target is an absolute entry file path or an identifier.
		Target string
	}

	// LaunchService starts a selected entry.
	LaunchService interface {
		Launch(ctx context.Context, req LaunchRequest) error
	}

	// DiagnosticRenderer reports skipped entry files after a list run. In
	// verbose mode the help card for each kind of problem follows the log.
	DiagnosticRenderer interface {
		Render(ctx context.Context, diags []discovery.Diagnostic, stderr io.Writer, verbose bool)
	}

	defaultDiagnosticRenderer struct{}
)

// NewApp builds an App. The error is reserved for dependencies that can fail
// to construct; none currently do.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Env == nil {
		deps.Env = osEnvironment{}
	}
	if deps.Viper == nil {
		deps.Viper = config.NewViper()
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Lists == nil {
		deps.Lists = &listService{config: deps.Config, parser: deps.Parser}
	}
	if deps.Launches == nil {
		deps.Launches = &launchService{parser: deps.Parser, start: deps.Start}
	}
	if deps.Diagnostics == nil {
		deps.Diagnostics = &defaultDiagnosticRenderer{}
	}

	return &App{
		Config:      deps.Config,
		Lists:       deps.Lists,
		Launches:    deps.Launches,
		Diagnostics: deps.Diagnostics,
		env:         deps.Env,
		viper:       deps.Viper,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
	}, nil
}

// loadSettings resolves flags and environment into a.settings and installs
// the stderr logger.
func (a *App) loadSettings() error {
	settings, err := config.LoadSettings(a.viper)
	if err != nil {
		return err
	}
	a.settings = settings
	a.verbose = settings.Verbose
	installLogger(a.stderr, a.verbose)
	return nil
}

func (a *App) loadOptions() config.LoadOptions {
	return loadOptionsFor(a.settings)
}

// Render logs every diagnostic. With verbose set, each linked catalog card
// is written to stderr once.
func (defaultDiagnosticRenderer) Render(_ context.Context, diags []discovery.Diagnostic, stderr io.Writer, verbose bool) {
	seen := make(map[issue.Id]bool)
	for _, d := range diags {
		d.Log()
		id := d.Code.Issue()
		if !verbose || id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		renderIssue(stderr, id)
	}
	if len(diags) > 0 {
		slog.Debug("discovery finished with diagnostics", "count", len(diags))
	}
}
