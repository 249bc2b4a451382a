// SPDX-License-Identifier: MPL-2.0

// Package catalog turns collected entries into the ordered menu list.
//
// Entries are visited in scan order. Hidden and blacklisted entries are
// dropped, later entries with an already accepted filename are shadowed,
// pinned entries take the slot of the first pinned rule they match, and the
// rest are renamed by the customs rules and sorted with the locale's collation.
package catalog
