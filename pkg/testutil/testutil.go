package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/surfreset/pkg/filesystem"
)

// CreateFile writes content to path, creating parent directories.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fsys filesystem.FS, path, content string) string {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates path and any missing parents.
func CreateDir(t *testing.T, fsys filesystem.FS, path string) string {
	t.Helper()

	if err := fsys.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, fsys filesystem.FS, path string) bool {
	t.Helper()

	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(t *testing.T, fsys filesystem.FS, path string) bool {
	t.Helper()

	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile returns the content of path as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, fsys filesystem.FS, path string) string {
	t.Helper()

	content, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// AssertFileContent checks that a file exists and has the expected content.
func AssertFileContent(t *testing.T, fsys filesystem.FS, path, expected string) {
	t.Helper()

	if !FileExists(t, fsys, path) {
		t.Fatalf("File %s does not exist", path)
	}
	if actual := ReadFile(t, fsys, path); actual != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertNoFile checks that nothing exists at path.
func AssertNoFile(t *testing.T, fsys filesystem.FS, path string) {
	t.Helper()

	if filesystem.Exists(fsys, path) {
		t.Errorf("Path %s exists but should not", path)
	}
}
