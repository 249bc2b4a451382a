// SPDX-License-Identifier: MPL-2.0

package config

const (
	defaultSystemConfigDir  = "/etc/xdg"
	defaultBundledConfigDir = "/usr/share"
)

var (
	// configDirOverride allows tests to override the user config directory.
	// os.UserHomeDir() doesn't reliably respect HOME on all platforms.
	configDirOverride string

	systemConfigDir  = defaultSystemConfigDir
	bundledConfigDir = defaultBundledConfigDir
)

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	systemConfigDir = defaultSystemConfigDir
	bundledConfigDir = defaultBundledConfigDir
}

// SetConfigDirOverride sets a custom user config directory path.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetSystemDirsOverride replaces the system-global and bundled-default roots,
// which normally are /etc/xdg and /usr/share.
func SetSystemDirsOverride(system, bundled string) {
	systemConfigDir = system
	bundledConfigDir = bundled
}
