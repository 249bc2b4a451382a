// SPDX-License-Identifier: MPL-2.0

// Package rule evaluates the declarative name/command-line filters used for the
// blacklist, pinned and rename (customs) rule sets.
package rule
