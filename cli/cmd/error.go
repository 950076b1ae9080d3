package cmd

import "github.com/ardnew/synbuild/pkg"

// Sentinel errors.
var (
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
	ErrNoInput     = pkg.NewError("no script given (use --expr or a script name)")
)
