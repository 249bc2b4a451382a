// SPDX-License-Identifier: MPL-2.0

// Package cache persists the serialized menu list between invocations.
//
// Two files live in the cache directory: the payload, holding the list exactly
// as printed, and the validity token, holding the rule file's modification
// time and the number of entry files across the search directories. The cache
// is used only when both token lines match the current state exactly.
//
// The count does not notice one entry file being replaced by another while
// the total stays the same. Such a swap is picked up on the next change that
// moves the count or touches the rule file, or with `rofi-apps cache clear`.
package cache
