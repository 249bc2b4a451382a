// SPDX-License-Identifier: MPL-2.0

// Package entrytest provides entry-description fixtures and a counting
// DescriptorParser for tests.
//
// This package is separate from testutil so that testutil stays free of
// domain imports.
//
// # Usage
//
//	path := entrytest.WriteDesktopFile(t, dir, "org/app.desktop",
//	    entrytest.WithName("App"), entrytest.WithIcon("app"))
//	parser := entrytest.NewCountingParser(entry.NewDesktopParser(""))
package entrytest
