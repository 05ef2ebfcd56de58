// Package launcher finds the installed application and starts it detached.
package launcher

import (
	"context"
	"strings"

	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/arthur-debert/surfreset/pkg/filesystem"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/paths"
	"github.com/rs/zerolog"
)

// Starter launches a command without waiting for it
type Starter interface {
	Start(name string, args ...string) error
}

// Launcher starts the first installed executable from the path table
type Launcher struct {
	fs      filesystem.FS
	table   paths.Table
	starter Starter
	goos    string
	logger  zerolog.Logger
}

// New creates a Launcher
func New(fsys filesystem.FS, table paths.Table, starter Starter, goos string) *Launcher {
	return &Launcher{
		fs:      fsys,
		table:   table,
		starter: starter,
		goos:    goos,
		logger:  logging.GetLogger("launcher"),
	}
}

// Locate returns the first candidate that exists
func (l *Launcher) Locate() (string, error) {
	for _, candidate := range l.table.Executables {
		if filesystem.Exists(l.fs, candidate) {
			l.logger.Debug().Str("path", candidate).Msg("Found executable")
			return candidate, nil
		}
		l.logger.Trace().Str("path", candidate).Msg("Executable candidate missing")
	}
	return "", errors.New(errors.ErrExecutableNotFound, "application executable not found").
		WithDetail("candidates", strings.Join(l.table.Executables, ", "))
}

// Launch locates the executable and hands it to the OS to open. Success
// only means the start request did not fail; it says nothing about the
// application having come up.
func (l *Launcher) Launch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := l.Locate()
	if err != nil {
		return "", err
	}

	name, args := l.openCommand(path)
	l.logger.Info().Str("path", path).Str("command", name).Msg("Launching application")
	if err := l.starter.Start(name, args...); err != nil {
		return path, errors.Wrapf(err, errors.ErrLaunch, "failed to launch %s", path)
	}
	return path, nil
}

func (l *Launcher) openCommand(path string) (string, []string) {
	switch l.goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return path, nil
	}
}
