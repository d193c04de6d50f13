// Package defs holds file names, paths, and permissions shared across the
// generator.
package defs

import "io/fs"

// Permissions for generated directories and files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// Generated project layout.
const (
	// SrcDir is the source directory of a generated project.
	SrcDir = "src"

	// AggregatorPath is the central aggregation file every generated unit
	// registers itself in, relative to the project root.
	AggregatorPath = "src/app.module.ts"

	// ReservedAuthUnit is the entity token of the unit the auth feature
	// synthesizes; explicit requests for it are dropped with a warning.
	ReservedAuthUnit = "user"
)
