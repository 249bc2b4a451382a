// SPDX-License-Identifier: MPL-2.0

// Package discovery finds entry-description files in the search directories.
//
// Directories are scanned in precedence order, each recursively. Every file is
// handed to an entry.DescriptorParser; files that fail to parse are reported
// as diagnostics and skipped, never as errors. The same walk backs Count, which
// feeds the cache validity token, and Resolve, which maps a launch identifier
// back to its file.
package discovery
