// SPDX-License-Identifier: MPL-2.0

// Package config loads the rofi-apps rule file and the runtime settings.
//
// The rule file is JSON that may carry // line comments. It is looked up at the
// user override, system-global and bundled-default locations, in that order;
// the first existing file wins and files are never merged. After comment
// stripping the document is validated against an embedded CUE schema
// (config_schema.cue) and its blacklist, pinned and customs rule lists are
// compiled eagerly, so a loaded Config is complete and immutable.
//
// Runtime settings (cache directory, search directories, locale, launcher) are
// read through Viper from flags and ROFI_APPS_* environment variables.
package config
