// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures into messages a rofi user can act on.
//
// Each known failure has an Id and a Markdown note rendered with glamour.
// ActionableError pairs a cause with the operation that failed and a list
// of suggested fixes.
package issue
