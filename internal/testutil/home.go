// SPDX-License-Identifier: MPL-2.0

package testutil

import "testing"

// SetXDGDirs points HOME and every XDG base directory variable used by
// rofi-apps into root, so tests never touch the real user directories.
// The returned function restores the previous environment.
//
//	t.Cleanup(testutil.SetXDGDirs(t, t.TempDir()))
func SetXDGDirs(t testing.TB, root string) func() {
	t.Helper()

	restores := []func(){
		MustSetenv(t, "HOME", root),
		MustSetenv(t, "XDG_CONFIG_HOME", root+"/config"),
		MustSetenv(t, "XDG_CACHE_HOME", root+"/cache"),
		MustSetenv(t, "XDG_DATA_HOME", root+"/data"),
		MustSetenv(t, "XDG_DATA_DIRS", root+"/usr/local/share:"+root+"/usr/share"),
	}
	return func() {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
	}
}
