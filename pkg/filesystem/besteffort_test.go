package filesystem

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingFS fails every mutation while still answering Stat from a real FS
type failingFS struct {
	FS
}

var errDenied = stderrors.New("access denied")

func (f failingFS) Remove(string) error { return errDenied }
func (f failingFS) RemoveAll(string) error { return errDenied }
func (f failingFS) WriteFile(string, []byte, fs.FileMode) error { return errDenied }

func bufLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf).Level(zerolog.TraceLevel), &buf
}

func TestAttempt(t *testing.T) {
	logger, buf := bufLogger()

	assert.Equal(t, OutcomeDone, Attempt(logger, "op", "/p", func() error { return nil }))
	assert.Equal(t, OutcomeAbsent, Attempt(logger, "op", "/p", func() error { return fs.ErrNotExist }))
	assert.NotContains(t, buf.String(), `"level":"error"`)

	assert.Equal(t, OutcomeFailed, Attempt(logger, "op", "/p", func() error { return errDenied }))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "access denied")
}

func TestRemovePath(t *testing.T) {
	logger, _ := bufLogger()
	fsys := NewMemFS()
	require.NoError(t, fsys.MkdirAll("/app/Cache/data", 0755))
	require.NoError(t, fsys.WriteFile("/app/Cache/data/x", []byte("x"), 0644))
	require.NoError(t, fsys.WriteFile("/app/Cookies", []byte("c"), 0644))

	assert.Equal(t, OutcomeDone, RemovePath(fsys, logger, "/app/Cache"))
	assert.Equal(t, OutcomeDone, RemovePath(fsys, logger, "/app/Cookies"))
	assert.Equal(t, OutcomeAbsent, RemovePath(fsys, logger, "/app/Cache"))

	assert.False(t, Exists(fsys, "/app/Cache"))
	assert.False(t, Exists(fsys, "/app/Cookies"))
}

func TestRemovePathFailureIsContained(t *testing.T) {
	logger, buf := bufLogger()
	base := NewMemFS()
	require.NoError(t, base.WriteFile("/app/locked", []byte("x"), 0644))

	assert.Equal(t, OutcomeFailed, RemovePath(failingFS{base}, logger, "/app/locked"))
	assert.Contains(t, buf.String(), "FILE_DELETE")
}

func TestResetDir(t *testing.T) {
	logger, _ := bufLogger()
	fsys := NewMemFS()
	require.NoError(t, fsys.WriteFile("/u/History/a/entries.json", []byte("{}"), 0644))

	assert.Equal(t, OutcomeDone, ResetDir(fsys, logger, "/u/History"))

	entries, err := fsys.ReadDir("/u/History")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// a missing directory is simply created
	assert.Equal(t, OutcomeDone, ResetDir(fsys, logger, "/u/workspaceStorage"))
	assert.True(t, Exists(fsys, "/u/workspaceStorage"))
}

func TestReplaceFile(t *testing.T) {
	logger, _ := bufLogger()
	fsys := NewMemFS()
	require.NoError(t, fsys.WriteFile("/a/machineid", []byte("old-content-that-is-longer\n"), 0644))

	assert.Equal(t, OutcomeDone, ReplaceFile(fsys, logger, "/a/machineid", []byte("new\n")))
	got, err := fsys.ReadFile("/a/machineid")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))

	assert.Equal(t, OutcomeDone, ReplaceFile(fsys, logger, "/fresh/dir/file", []byte("x")))
	assert.True(t, Exists(fsys, "/fresh/dir/file"))
}

func TestWriteFileFailure(t *testing.T) {
	logger, _ := bufLogger()
	assert.Equal(t, OutcomeFailed, WriteFile(failingFS{NewMemFS()}, logger, "/a/settings.json", []byte("{}")))
}
