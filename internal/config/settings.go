// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read into Settings.
const EnvPrefix = "ROFI_APPS"

// Setting keys shared by flags, environment variables and Settings.
const (
	KeyConfig     = "config"
	KeyCacheDir   = "cache_dir"
	KeySearchDirs = "search_dirs"
	KeyLocale     = "locale"
	KeyLauncher   = "launcher"
	KeyVerbose    = "verbose"
)

const (
	// LauncherCommand hands the identifier to an external program (gtk-launch).
	LauncherCommand = "gtk-launch"
	// LauncherExec starts the entry's Exec line directly.
	LauncherExec = "exec"
)

// Settings are the runtime knobs that are not part of the rule file.
type Settings struct {
	ConfigFile string   `mapstructure:"config"`
	CacheDir   string   `mapstructure:"cache_dir"`
	SearchDirs []string `mapstructure:"search_dirs"`
	Locale     string   `mapstructure:"locale"`
	Launcher   string   `mapstructure:"launcher"`
	Verbose    bool     `mapstructure:"verbose"`
}

// NewViper returns a Viper instance with defaults and ROFI_APPS_* environment
// binding. Flags are bound by the CLI layer.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeyCacheDir, DefaultCacheDir())
	v.SetDefault(KeySearchDirs, DefaultSearchDirs())
	v.SetDefault(KeyLocale, DefaultLocale())
	v.SetDefault(KeyLauncher, LauncherCommand)
	v.SetDefault(KeyVerbose, false)
	return v
}

// LoadSettings decodes v into Settings. A search_dirs value given as a single
// colon-separated string (as from the environment) is split.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	var dirs []string
	for _, d := range s.SearchDirs {
		for _, part := range filepath.SplitList(d) {
			if part = strings.TrimSpace(part); part != "" {
				dirs = append(dirs, filepath.Clean(part))
			}
		}
	}
	s.SearchDirs = dirs

	// Any value other than LauncherExec names a program that accepts the
	// identifier as its only argument.
	if strings.TrimSpace(s.Launcher) == "" {
		return nil, fmt.Errorf("launcher must not be empty")
	}
	return &s, nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/rofi-apps (defaulting to ~/.cache).
func DefaultCacheDir() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), AppName)
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, AppName)
}

// DefaultSearchDirs returns the applications directories in XDG precedence
// order: $XDG_DATA_HOME first, then each $XDG_DATA_DIRS element.
func DefaultSearchDirs() []string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}

	var dirs []string
	seen := make(map[string]bool)
	add := func(base string) {
		if base == "" {
			return
		}
		dir := filepath.Join(base, "applications")
		if seen[dir] {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	add(dataHome)
	for _, d := range filepath.SplitList(dataDirs) {
		add(d)
	}
	return dirs
}

// DefaultLocale returns the collation locale from LC_ALL, LC_COLLATE or LANG.
func DefaultLocale() string {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
