// Package fspath contains path representations and the normalization applied to filespecs
// before they are handed to a globber.
package fspath

// Local is a machine-dependent path representation. It is the format expected by functions in the
// path/filepath module.
type Local = string

// POSIX is a forward-slash delimited path representation. It is the format expected by functions in
// the path module and by fs.FS implementations.
type POSIX = string
