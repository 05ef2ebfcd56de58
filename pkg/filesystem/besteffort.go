package filesystem

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/rs/zerolog"
)

// Outcome is what a best-effort operation ended up doing
type Outcome string

const (
	OutcomeDone   Outcome = "done"
	OutcomeAbsent Outcome = "absent"
	OutcomeFailed Outcome = "failed"
)

// Attempt runs fn and classifies its error. A not-exist error is an
// expected absence and is neither logged nor reported as a failure. Any
// other error is logged with op and path; the caller moves on either way.
func Attempt(logger zerolog.Logger, op, path string, fn func() error) Outcome {
	err := fn()
	switch {
	case err == nil:
		return OutcomeDone
	case stderrors.Is(err, fs.ErrNotExist):
		logger.Trace().Str("op", op).Str("path", path).Msg("Nothing to do, path is absent")
		return OutcomeAbsent
	default:
		logger.Error().Err(err).Str("op", op).Str("path", path).Msg("Operation failed, continuing")
		return OutcomeFailed
	}
}

// RemovePath deletes path whether it is a file or a directory tree
func RemovePath(fsys FS, logger zerolog.Logger, path string) Outcome {
	return Attempt(logger, "remove", path, func() error {
		info, err := fsys.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			err = fsys.RemoveAll(path)
		} else {
			err = fsys.Remove(path)
		}
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileDelete, "failed to delete %s", filepath.Base(path))
		}
		return nil
	})
}

// ResetDir removes path and recreates it empty
func ResetDir(fsys FS, logger zerolog.Logger, path string) Outcome {
	return Attempt(logger, "reset-dir", path, func() error {
		if err := fsys.RemoveAll(path); err != nil {
			return errors.Wrapf(err, errors.ErrFileDelete, "failed to clear %s", filepath.Base(path))
		}
		if err := fsys.MkdirAll(path, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to recreate %s", filepath.Base(path))
		}
		return nil
	})
}

// ReplaceFile deletes any existing file at path, then writes data. The
// parent directory is created first. There is no temp-file-and-rename: a
// crash between the delete and the write loses the file.
func ReplaceFile(fsys FS, logger zerolog.Logger, path string, data []byte) Outcome {
	return Attempt(logger, "replace", path, func() error {
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent of %s", filepath.Base(path))
		}
		if err := fsys.Remove(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrFileDelete, "failed to delete old %s", filepath.Base(path))
		}
		if err := fsys.WriteFile(path, data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", filepath.Base(path))
		}
		return nil
	})
}

// WriteFile ensures the parent directory exists and writes data over
// whatever is at path
func WriteFile(fsys FS, logger zerolog.Logger, path string, data []byte) Outcome {
	return Attempt(logger, "write", path, func() error {
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent of %s", filepath.Base(path))
		}
		if err := fsys.WriteFile(path, data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", filepath.Base(path))
		}
		return nil
	})
}
