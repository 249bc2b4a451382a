// SPDX-License-Identifier: MPL-2.0

// Package testutil collects fail-fast helpers for rofi-apps tests.
//
// Environment helpers (MustSetenv, MustUnsetenv) return a restore func meant
// for t.Cleanup. Filesystem helpers (MustWriteFile, MustTouch, MustRemove and
// friends) build the desktop entry trees the collector and cache tests scan.
package testutil
