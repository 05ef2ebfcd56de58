package filesystem

import "io/fs"

// FS is the subset of filesystem operations the reset steps need
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Removal
	Remove(name string) error
	RemoveAll(path string) error
}

// Exists reports whether name can be stat'ed
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
