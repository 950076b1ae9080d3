//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version embedded from the VERSION file.
//
//go:embed VERSION
var Version string

const (
	// Name is the command name. It appears in help text and names the
	// default configuration and cache directories.
	Name = "synbuild"
	// Description is the one-line summary shown in help output.
	Description = "Rust syntax tree builder"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
