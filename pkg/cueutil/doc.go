// SPDX-License-Identifier: MPL-2.0

// Package cueutil checks JSON or CUE documents against an embedded CUE
// definition and decodes them into Go structs.
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	specs, err := cueutil.Decode[Specs](schema, data, "#Config",
//	    cueutil.WithFilename(path),
//	    cueutil.WithRequired("blacklist", "pinned", "customs"),
//	)
//
// Errors in the document carry the file name and a JSON-style path to the
// offending field.
package cueutil
