// Package filesystem provides implementations of the types.FS interface:
// an OS-backed one for production use and an afero-backed one so tests can
// run against an in-memory tree.
package filesystem
