package types

import "io/fs"

// FS abstracts the filesystem operations the snapshot engine needs,
// allowing tests to inject a memory-backed implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Removal
	Remove(name string) error
	RemoveAll(path string) error
}
