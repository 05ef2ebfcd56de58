// Package filesystem provides the filesystem seam used by every component
// that touches the target application's state directories.
//
// This package contains the FS interface, its OS and afero-backed
// implementations, and the best-effort helpers that apply the
// "continue on absence, log on failure" rule to deletes and writes.
package filesystem
