// SPDX-License-Identifier: MPL-2.0

// Package entry defines the launchable application entry, the descriptor
// produced by an entry-description parser, and the path-derived identifier used
// to re-locate an entry at launch time.
//
// The parser is a capability interface (DescriptorParser) so the catalog and
// cache pipelines can be exercised against fakes. DesktopParser is the default
// implementation for freedesktop .desktop files.
package entry
