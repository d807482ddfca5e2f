// Package testutil provides shared helpers for building source trees in
// tests, backed either by an in-memory filesystem or a temp directory.
package testutil
